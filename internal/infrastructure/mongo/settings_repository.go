package mongo

import (
	"context"
	"fmt"

	"fairgrounds-admin/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettingsRepository persists the singleton settings document.
type MongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new MongoDB settings repository
func NewMongoSettingsRepository(database *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{
		collection: database.Collection("settings"),
	}
}

// Get returns the settings document, or (nil, nil) if it was never written.
func (r *MongoSettingsRepository) Get(ctx context.Context) (*model.SystemSettings, error) {
	var settings model.SystemSettings
	err := r.collection.FindOne(ctx, bson.M{"_id": model.SettingsDocID}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings from MongoDB: %w", err)
	}
	return &settings, nil
}

// Merge upserts the normalized settings fields onto the singleton document.
// $set leaves any stored fields outside the model untouched.
func (r *MongoSettingsRepository) Merge(ctx context.Context, settings *model.SystemSettings) error {
	update := bson.M{
		"$set": bson.M{
			"maintenanceMode":      settings.MaintenanceMode,
			"ownerSignupDisabled":  settings.OwnerSignupDisabled,
			"brandSignupDisabled":  settings.BrandSignupDisabled,
			"vendorSignupDisabled": settings.VendorSignupDisabled,
			"posLoginDisabled":     settings.POSLoginDisabled,
			"message":              settings.Message,
			"updatedAt":            settings.UpdatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": model.SettingsDocID}, update, opts)
	if err != nil {
		return fmt.Errorf("failed to save settings to MongoDB: %w", err)
	}
	return nil
}
