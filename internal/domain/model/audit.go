package model

import "time"

// AuditLogEntry records one administrative action. Entries are append-only
// and never read back by this system.
type AuditLogEntry struct {
	ID        string                 `bson:"_id" json:"id"`
	Action    string                 `bson:"action" json:"action"`
	ActorID   string                 `bson:"actorId" json:"actorId"`
	Metadata  map[string]interface{} `bson:"metadata" json:"metadata"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
}
