package services

import (
	"context"
	"fmt"

	"fairgrounds-admin/internal/domain/model"
	"fairgrounds-admin/internal/domain/repository"
	"fairgrounds-admin/pkg/errors"
)

// EventService applies status transitions to event documents.
type EventService struct {
	events repository.EventRepository
	audit  AuditRecorder
}

// NewEventService creates a new event service
func NewEventService(events repository.EventRepository, audit AuditRecorder) *EventService {
	return &EventService{events: events, audit: audit}
}

// UpdateStatus validates and applies an event status change, then records
// an audit entry. Validation happens before any write.
func (s *EventService) UpdateStatus(ctx context.Context, actorID, eventID, status string) error {
	if eventID == "" {
		return errors.NewValidationError("eventId is required")
	}
	if status == "" {
		return errors.NewValidationError("status is required")
	}

	st := model.EventStatus(status)
	if !st.IsValid() {
		return errors.NewValidationError("status must be one of: active, suspended")
	}

	if err := s.events.UpdateStatus(ctx, eventID, st); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to update event status: %v", err))
	}

	s.audit.Record("update_event_status", actorID, map[string]interface{}{
		"eventId": eventID,
		"status":  status,
	})

	return nil
}
