package repository

import (
	"context"

	"fairgrounds-admin/internal/domain/model"
)

// VendorRepository accesses vendor registrations nested under events.
type VendorRepository interface {
	// FindByEventAndID returns the vendor identified by (eventID, vendorID),
	// or ErrNotFound when no such vendor exists.
	FindByEventAndID(ctx context.Context, eventID, vendorID string) (*model.Vendor, error)

	// UpdateStatus sets the vendor status. rejectionReason is stored only
	// when the new status is rejected.
	UpdateStatus(ctx context.Context, eventID, vendorID string, status model.VendorStatus, rejectionReason string) error

	// Count returns the number of vendor documents across all events.
	Count(ctx context.Context) (int64, error)
}
