package packageRepo

import (
	"context"
	"fmt"
	"time"

	"weddify/database"
	"weddify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPackageRepo implements PackageRepository using MongoDB.
type MongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageRepo creates a new instance of PackageRepository using MongoDB.
func NewMongoPackageRepo() PackageRepository {
	return &MongoPackageRepo{coll: database.Collection("packages")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoPackageRepo) GetByID(id string) (*models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var pkg models.Package
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch package with id %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoPackageRepo) GetByVendor(vendorID string) ([]models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"vendorId": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to find packages for vendor %s: %w", vendorID, err)
	}
	defer cursor.Close(ctx)
	var packages []models.Package
	for cursor.Next(ctx) {
		var p models.Package
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, cursor.Err()
}

func (r *MongoPackageRepo) Search(criteria PackageSearchCriteria) ([]models.Package, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if criteria.Category != "" {
		filter["category"] = bson.M{"$regex": criteria.Category, "$options": "i"}
	}
	if criteria.VendorID != "" {
		filter["vendorId"] = criteria.VendorID
	}
	if criteria.MaxPrice > 0 {
		filter["pricing.basePrice"] = bson.M{"$lte": criteria.MaxPrice}
	}
	if criteria.OnlyAvailable {
		filter["availability.isAvailable"] = true
	}

	limit := criteria.Limit
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "pricing.basePrice", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("package search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	for cursor.Next(ctx) {
		var p models.Package
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode package: %w", err)
		}
		packages = append(packages, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return packages, nil
}

func (r *MongoPackageRepo) Create(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

// Update rewrites the package document except for the availability
// counters, which are owned exclusively by Reserve/Release.
func (r *MongoPackageRepo) Update(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": pkg.ID}
	update := bson.M{"$set": bson.M{
		"name":                            pkg.Name,
		"category":                        pkg.Category,
		"description":                     pkg.Description,
		"pricing":                         pkg.Pricing,
		"services":                        pkg.Services,
		"photos":                          pkg.Photos,
		"isActive":                        pkg.IsActive,
		"availability.maxBookings":        pkg.Availability.MaxBookings,
		"availability.advanceBookingDays": pkg.Availability.AdvanceBookingDays,
		"availability.blackoutDates":      pkg.Availability.BlackoutDates,
		"updatedAt":                       time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update package with id %s: %w", pkg.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("package with id %s not found", pkg.ID)
	}
	return nil
}

func (r *MongoPackageRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete package with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("package with id %s not found", id)
	}
	return nil
}
