package model

import "time"

// VendorStatus is the review state of a vendor within an event.
type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "pending"
	VendorStatusApproved  VendorStatus = "approved"
	VendorStatusRejected  VendorStatus = "rejected"
	VendorStatusSuspended VendorStatus = "suspended"
)

// DefaultRejectionReason is stored when a vendor is rejected without an
// explicit reason.
const DefaultRejectionReason = "No reason provided"

// IsValid reports whether the status is one of the allowed vendor states.
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusPending, VendorStatusApproved, VendorStatusRejected, VendorStatusSuspended:
		return true
	}
	return false
}

// BrandStatus returns the brand state derived from a vendor status change.
// The mapping is fixed: an approved vendor activates its brand, a rejected
// or suspended vendor suspends it, a pending vendor keeps it pending.
func (s VendorStatus) BrandStatus() BrandStatus {
	switch s {
	case VendorStatusApproved:
		return BrandStatusActive
	case VendorStatusRejected, VendorStatusSuspended:
		return BrandStatusSuspended
	default:
		return BrandStatusPending
	}
}

// Vendor is a vendor registration nested under an event, identified by the
// (eventId, vendorId) pair.
type Vendor struct {
	ID              string       `bson:"_id" json:"id"`
	EventID         string       `bson:"eventId" json:"eventId"`
	BrandID         string       `bson:"brandId,omitempty" json:"brandId,omitempty"`
	Name            string       `bson:"name,omitempty" json:"name,omitempty"`
	Status          VendorStatus `bson:"status" json:"status"`
	RejectionReason string       `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`
}
