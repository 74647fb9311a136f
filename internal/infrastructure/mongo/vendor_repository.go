package mongo

import (
	"context"
	"fmt"
	"time"

	"fairgrounds-admin/internal/domain/model"
	"fairgrounds-admin/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoVendorRepository accesses vendor registrations. Vendors live in one
// collection keyed by the (eventId, vendorId) pair.
type MongoVendorRepository struct {
	collection *mongo.Collection
}

// NewMongoVendorRepository creates a new MongoDB vendor repository
func NewMongoVendorRepository(database *mongo.Database) *MongoVendorRepository {
	return &MongoVendorRepository{
		collection: database.Collection("vendors"),
	}
}

// FindByEventAndID returns the vendor identified by (eventID, vendorID).
func (r *MongoVendorRepository) FindByEventAndID(ctx context.Context, eventID, vendorID string) (*model.Vendor, error) {
	var vendor model.Vendor
	err := r.collection.FindOne(ctx, bson.M{"_id": vendorID, "eventId": eventID}).Decode(&vendor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vendor from MongoDB: %w", err)
	}
	return &vendor, nil
}

// UpdateStatus sets the vendor status, storing the rejection reason only
// when the vendor is being rejected.
func (r *MongoVendorRepository) UpdateStatus(ctx context.Context, eventID, vendorID string, status model.VendorStatus, rejectionReason string) error {
	fields := bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}
	if status == model.VendorStatusRejected {
		fields["rejectionReason"] = rejectionReason
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": vendorID, "eventId": eventID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update vendor in MongoDB: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Count returns the number of vendor documents across all events.
func (r *MongoVendorRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count vendors in MongoDB: %w", err)
	}
	return count, nil
}
