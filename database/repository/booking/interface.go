package bookingRepo

import (
	"context"
	"time"

	"weddify/models"
)

// BookingRepository defines methods for booking record persistence.
type BookingRepository interface {
	// Save inserts a booking and returns its ID.
	Save(ctx context.Context, booking *models.Booking) (string, error)
	// GetByID retrieves a booking by ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// ListByUser retrieves all bookings made by a user, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// ListByVendor retrieves all bookings against a vendor, newest first.
	ListByVendor(vendorID string) ([]models.Booking, error)
	// UpdateStatus transitions a booking's status.
	UpdateStatus(ctx context.Context, id, status string) error
	// UpdatePayment patches the embedded payment sub-document.
	UpdatePayment(ctx context.Context, id string, payment models.BookingPayment) error
	// ListExpiredPending returns pending bookings created before the cutoff.
	ListExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
}
