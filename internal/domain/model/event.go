package model

import "time"

// EventStatus is the lifecycle state of a marketplace event.
type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusSuspended EventStatus = "suspended"
)

// IsValid reports whether the status is one of the allowed event states.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusActive, EventStatusSuspended:
		return true
	}
	return false
}

// Event is a marketplace event document.
type Event struct {
	ID        string      `bson:"_id" json:"id"`
	OwnerID   string      `bson:"ownerId" json:"ownerId"`
	Name      string      `bson:"name,omitempty" json:"name,omitempty"`
	Status    EventStatus `bson:"status" json:"status"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}
