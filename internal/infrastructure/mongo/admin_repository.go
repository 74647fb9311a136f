package mongo

import (
	"context"
	"fmt"

	"fairgrounds-admin/internal/domain/model"
	"fairgrounds-admin/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAdminRepository reads per-user admin role documents.
type MongoAdminRepository struct {
	collection *mongo.Collection
}

// NewMongoAdminRepository creates a new MongoDB admin repository
func NewMongoAdminRepository(database *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{
		collection: database.Collection("admins"),
	}
}

// FindByUserID returns the admin profile for the given user.
func (r *MongoAdminRepository) FindByUserID(ctx context.Context, userID string) (*model.AdminProfile, error) {
	var profile model.AdminProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin profile from MongoDB: %w", err)
	}
	return &profile, nil
}
