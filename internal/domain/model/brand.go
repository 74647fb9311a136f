package model

import "time"

// BrandStatus is the derived state of a brand. It is written only as a side
// effect of vendor status changes.
type BrandStatus string

const (
	BrandStatusPending   BrandStatus = "pending"
	BrandStatusActive    BrandStatus = "active"
	BrandStatusSuspended BrandStatus = "suspended"
)

// Brand is a brand document associated with one or more vendor registrations.
type Brand struct {
	ID        string      `bson:"_id" json:"id"`
	Name      string      `bson:"name,omitempty" json:"name,omitempty"`
	Status    BrandStatus `bson:"status" json:"status"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}
