package services

import (
	"context"
	"fmt"

	stderrors "errors"

	"fairgrounds-admin/internal/domain/model"
	"fairgrounds-admin/internal/domain/repository"
	"fairgrounds-admin/pkg/errors"
)

// VendorService applies status transitions to vendor registrations and
// cascades them to the associated brand.
type VendorService struct {
	vendors repository.VendorRepository
	brands  repository.BrandRepository
	audit   AuditRecorder
}

// NewVendorService creates a new vendor service
func NewVendorService(vendors repository.VendorRepository, brands repository.BrandRepository, audit AuditRecorder) *VendorService {
	return &VendorService{vendors: vendors, brands: brands, audit: audit}
}

// UpdateStatus validates and applies a vendor status change. The vendor is
// fetched first; a missing vendor stops the operation before any write and
// before any audit entry. When the vendor references a brand, the brand
// status is derived from the new vendor status and written as a second,
// independent update. The vendor and brand writes are not transactional.
func (s *VendorService) UpdateStatus(ctx context.Context, actorID, eventID, vendorID, status, rejectionReason string) error {
	if eventID == "" {
		return errors.NewValidationError("eventId is required")
	}
	if vendorID == "" {
		return errors.NewValidationError("vendorId is required")
	}
	if status == "" {
		return errors.NewValidationError("status is required")
	}

	st := model.VendorStatus(status)
	if !st.IsValid() {
		return errors.NewValidationError("status must be one of: pending, approved, rejected, suspended")
	}

	vendor, err := s.vendors.FindByEventAndID(ctx, eventID, vendorID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NewNotFoundError("vendor")
		}
		return errors.NewInternalError(fmt.Sprintf("failed to load vendor: %v", err))
	}

	reason := ""
	if st == model.VendorStatusRejected {
		reason = rejectionReason
		if reason == "" {
			reason = model.DefaultRejectionReason
		}
	}

	if err := s.vendors.UpdateStatus(ctx, eventID, vendorID, st, reason); err != nil {
		return errors.NewInternalError(fmt.Sprintf("failed to update vendor status: %v", err))
	}

	if vendor.BrandID != "" {
		if err := s.brands.UpdateStatus(ctx, vendor.BrandID, st.BrandStatus()); err != nil {
			return errors.NewInternalError(fmt.Sprintf("failed to update brand status: %v", err))
		}
	}

	var reasonMeta interface{}
	if st == model.VendorStatusRejected {
		reasonMeta = reason
	}

	s.audit.Record("update_vendor_status", actorID, map[string]interface{}{
		"eventId":         eventID,
		"vendorId":        vendorID,
		"status":          status,
		"rejectionReason": reasonMeta,
	})

	return nil
}
