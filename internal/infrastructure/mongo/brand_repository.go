package mongo

import (
	"context"
	"fmt"
	"time"

	"fairgrounds-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBrandRepository accesses brand documents.
type MongoBrandRepository struct {
	collection *mongo.Collection
}

// NewMongoBrandRepository creates a new MongoDB brand repository
func NewMongoBrandRepository(database *mongo.Database) *MongoBrandRepository {
	return &MongoBrandRepository{
		collection: database.Collection("brands"),
	}
}

// UpdateStatus sets the derived status of the named brand.
func (r *MongoBrandRepository) UpdateStatus(ctx context.Context, brandID string, status model.BrandStatus) error {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": brandID}, update)
	if err != nil {
		return fmt.Errorf("failed to update brand in MongoDB: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update matched no brand: %s", brandID)
	}
	return nil
}
