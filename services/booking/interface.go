package booking

import (
	"context"
	"time"

	bookingRepo "weddify/database/repository/booking"
	packageRepo "weddify/database/repository/packages"
	venueRepo "weddify/database/repository/venue"
	"weddify/models"
	"weddify/services/admin"
	"weddify/services/notification"
)

// ReminderScheduler queues a push notification that fires at a future
// time. Implemented by the queue worker package; injected here so the
// engine stays decoupled from the queue client.
type ReminderScheduler interface {
	ScheduleReminder(userID, title, message string, fireAt time.Time) error
}

// BookingService is the booking engine's public surface.
type BookingService interface {
	// CreateVendorPackageBooking runs the full flow: validate, price,
	// reserve a slot atomically, charge, and persist the record.
	CreateVendorPackageBooking(ctx context.Context, userID string, input models.BookingRequestInput) (*models.Booking, error)
	// ConfirmBooking transitions a pending booking to confirmed (vendor action).
	ConfirmBooking(ctx context.Context, bookingID, vendorID string) (*models.Booking, error)
	// CancelBooking cancels a booking and releases its package slot.
	CancelBooking(ctx context.Context, bookingID, userID string) error
	// GetBooking retrieves a single booking owned by the caller.
	GetBooking(ctx context.Context, bookingID, callerID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListVendorBookings(ctx context.Context, vendorID string) ([]models.Booking, error)
	// ExpirePendingBookings cancels bookings stuck in pending payment
	// longer than ttl, releasing their reservations. Returns the count.
	ExpirePendingBookings(ctx context.Context, ttl time.Duration) (int, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	PackageRepo  packageRepo.PackageRepository
	VenueRepo    venueRepo.VenueRepository
	BookingRepo  bookingRepo.BookingRepository
	Payments     PaymentHandler
	Notification notification.NotificationService
	Settings     admin.SettingsService
	Reminders    ReminderScheduler
}
