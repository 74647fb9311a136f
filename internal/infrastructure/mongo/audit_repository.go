package mongo

import (
	"context"
	"fmt"

	"fairgrounds-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAuditRepository appends audit log entries.
type MongoAuditRepository struct {
	collection *mongo.Collection
}

// NewMongoAuditRepository creates a new MongoDB audit repository
func NewMongoAuditRepository(database *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{
		collection: database.Collection("audit_logs"),
	}
}

// Insert appends one audit entry.
func (r *MongoAuditRepository) Insert(ctx context.Context, entry *model.AuditLogEntry) error {
	doc := bson.M{
		"_id":       entry.ID,
		"action":    entry.Action,
		"actorId":   entry.ActorID,
		"metadata":  entry.Metadata,
		"createdAt": entry.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}
