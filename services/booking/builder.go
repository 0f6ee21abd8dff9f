package booking

import (
	"time"

	"weddify/models"

	"github.com/google/uuid"
)

// BuildBookingRecord assembles the full booking entity from the validated
// request, the package, and the computed quote. Every optional sub-object
// is populated with a default so created bookings have a uniform shape
// regardless of which inputs were omitted. Only called after validation
// and slot reservation have both succeeded.
func BuildBookingRecord(
	userID string,
	req NormalizedRequest,
	pkg models.Package,
	quote Quote,
	now time.Time,
) *models.Booking {
	metadata := map[string]string{}
	for k, v := range req.Customizations {
		metadata[k] = v
	}

	services := make([]models.PackageService, len(pkg.Services))
	copy(services, pkg.Services)

	return &models.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		VendorID:   pkg.VendorID,
		PackageID:  pkg.ID,
		VenueID:    req.VenueID,
		Services:   services,
		Schedule:   scheduleFromNormalized(req),
		GuestCount: req.GuestCount,
		Pricing: models.BookingPricing{
			BasePrice:  quote.BasePrice,
			Discounts:  append([]models.Discount{}, quote.Discounts...),
			TaxRateBps: quote.TaxRateBps,
			TaxAmount:  quote.TaxAmount,
			FinalPrice: quote.FinalPrice,
			Currency:   quote.Currency,
		},
		Status: models.BookingStatusPending,
		Payment: models.BookingPayment{
			Status: "pending",
			Method: req.PaymentMethod,
			Amount: quote.FinalPrice,
		},
		Notes:         req.Notes,
		Metadata:      metadata,
		Notifications: []models.Notification{},
		Conflicts:     []string{},
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func scheduleFromNormalized(req NormalizedRequest) models.BookingSchedule {
	return models.BookingSchedule{
		Date:          req.Date.Format(dayLayout),
		StartTime:     formatClock(req.StartMinute),
		EndTime:       formatClock(req.EndMinute),
		DurationHours: (req.EndMinute - req.StartMinute + 59) / 60,
	}
}

func formatClock(minutes int) string {
	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format("15:04")
}
