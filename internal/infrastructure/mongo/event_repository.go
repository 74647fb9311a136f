package mongo

import (
	"context"
	"fmt"
	"time"

	"fairgrounds-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEventRepository accesses event documents.
type MongoEventRepository struct {
	collection *mongo.Collection
}

// NewMongoEventRepository creates a new MongoDB event repository
func NewMongoEventRepository(database *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{
		collection: database.Collection("events"),
	}
}

// UpdateStatus sets the status field of the named event. An update that
// matches no document fails, mirroring a store-level update fault.
func (r *MongoEventRepository) UpdateStatus(ctx context.Context, eventID string, status model.EventStatus) error {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": eventID}, update)
	if err != nil {
		return fmt.Errorf("failed to update event in MongoDB: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update matched no event: %s", eventID)
	}
	return nil
}

// Count returns the number of event documents.
func (r *MongoEventRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count events in MongoDB: %w", err)
	}
	return count, nil
}
