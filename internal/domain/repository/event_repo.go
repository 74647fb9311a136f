package repository

import (
	"context"

	"fairgrounds-admin/internal/domain/model"
)

// EventRepository accesses event documents.
type EventRepository interface {
	// UpdateStatus sets the status of the named event. Updating a missing
	// event fails with an error from the underlying store.
	UpdateStatus(ctx context.Context, eventID string, status model.EventStatus) error

	// Count returns the number of event documents.
	Count(ctx context.Context) (int64, error)
}
