package packageRepo

import (
	"context"
	"fmt"

	"weddify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reserve performs the capacity check-and-increment as one conditional
// FindOneAndUpdate. The filter only matches while the package is active,
// available, and strictly below maxBookings, so two concurrent callers
// racing for the last slot cannot both succeed; the pipeline update flips
// isAvailable off in the same write when the increment fills the package.
func (r *MongoPackageRepo) Reserve(ctx context.Context, packageID string) (*models.Package, error) {
	filter := bson.M{
		"id":                       packageID,
		"isActive":                 true,
		"availability.isAvailable": true,
		"$expr": bson.M{
			"$lt": bson.A{"$availability.currentBookings", "$availability.maxBookings"},
		},
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "availability.currentBookings", Value: bson.D{
				{Key: "$add", Value: bson.A{"$availability.currentBookings", 1}},
			}},
			{Key: "availability.isAvailable", Value: bson.D{
				{Key: "$lt", Value: bson.A{
					bson.D{{Key: "$add", Value: bson.A{"$availability.currentBookings", 1}}},
					"$availability.maxBookings",
				}},
			}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Package
	err := r.coll.FindOneAndUpdate(ctx, filter, pipeline, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoCapacity
		}
		return nil, fmt.Errorf("failed to reserve slot on package %s: %w", packageID, err)
	}
	return &updated, nil
}

// Release decrements the booking counter and re-opens availability.
// The counter is guarded against going negative.
func (r *MongoPackageRepo) Release(ctx context.Context, packageID string) error {
	filter := bson.M{
		"id": packageID,
		"availability.currentBookings": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{"availability.currentBookings": -1},
		"$set": bson.M{"availability.isAvailable": true},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release slot on package %s: %w", packageID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("package %s has no reserved slots to release", packageID)
	}
	return nil
}
