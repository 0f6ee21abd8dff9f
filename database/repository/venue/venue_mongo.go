package venueRepo

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

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a new instance of VenueRepository using MongoDB.
func NewMongoVenueRepo() VenueRepository {
	return &MongoVenueRepo{coll: database.Collection("venues")}
}

func (r *MongoVenueRepo) GetByID(id string) (*models.Venue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var venue models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&venue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

func (r *MongoVenueRepo) GetByVendor(vendorID string) ([]models.Venue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"vendorId": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to find venues for vendor %s: %w", vendorID, err)
	}
	defer cursor.Close(ctx)
	var venues []models.Venue
	for cursor.Next(ctx) {
		var v models.Venue
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, cursor.Err()
}

func (r *MongoVenueRepo) Search(criteria VenueSearchCriteria) ([]models.Venue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if criteria.City != "" {
		filter["city"] = bson.M{"$regex": criteria.City, "$options": "i"}
	}
	if criteria.MinCapacity > 0 {
		filter["capacity"] = bson.M{"$gte": criteria.MinCapacity}
	}
	if criteria.MaxPrice > 0 {
		filter["pricePerDay"] = bson.M{"$lte": criteria.MaxPrice}
	}

	limit := criteria.Limit
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "pricePerDay", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("venue search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	for cursor.Next(ctx) {
		var v models.Venue
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return venues, nil
}

func (r *MongoVenueRepo) Create(venue *models.Venue) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, venue); err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

func (r *MongoVenueRepo) Update(venue *models.Venue) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": venue.ID}, bson.M{"$set": venue})
	if err != nil {
		return fmt.Errorf("failed to update venue with id %s: %w", venue.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("venue with id %s not found", venue.ID)
	}
	return nil
}

func (r *MongoVenueRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete venue with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("venue with id %s not found", id)
	}
	return nil
}
