package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

func (r *MongoBookingRepo) Save(ctx context.Context, booking *models.Booking) (string, error) {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to save booking: %w", err)
	}
	return booking.ID, nil
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	return r.list(bson.M{"userId": userID})
}

func (r *MongoBookingRepo) ListByVendor(vendorID string) ([]models.Booking, error) {
	return r.list(bson.M{"vendorId": vendorID})
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, cursor.Err()
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

func (r *MongoBookingRepo) UpdatePayment(ctx context.Context, id string, payment models.BookingPayment) error {
	update := bson.M{"$set": bson.M{"payment": payment, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update payment for booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

func (r *MongoBookingRepo) ListExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status":         models.BookingStatusPending,
		"payment.status": "pending",
		"createdAt":      bson.M{"$lt": cutoff},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired pending bookings: %w", err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, cursor.Err()
}
