package booking

import (
	"testing"
	"time"

	"weddify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingRecordUniformShape(t *testing.T) {
	pkg := availablePackage()
	pkg.Services = []models.PackageService{
		{Name: "Full day shoot", Included: true},
	}
	req := NormalizedRequest{
		PackageID:     pkg.ID,
		Date:          time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		StartMinute:   600,
		EndMinute:     1080,
		GuestCount:    150,
		PaymentMethod: "card",
	}
	quote := ComputeQuote(pkg.Pricing, 1500, testNow)

	record := BuildBookingRecord("user-1", req, pkg, quote, testNow)

	require.NotNil(t, record)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "vendor-1", record.VendorID)
	assert.Equal(t, "pkg-1", record.PackageID)
	assert.Equal(t, models.BookingStatusPending, record.Status)
	assert.True(t, record.IsActive)
	assert.Equal(t, testNow, record.CreatedAt)

	// Optional sub-objects are always present, never nil.
	assert.NotNil(t, record.Metadata)
	assert.NotNil(t, record.Notifications)
	assert.NotNil(t, record.Conflicts)
	assert.NotNil(t, record.Pricing.Discounts)

	assert.Equal(t, "2026-07-15", record.Schedule.Date)
	assert.Equal(t, "10:00", record.Schedule.StartTime)
	assert.Equal(t, "18:00", record.Schedule.EndTime)
	assert.Equal(t, 8, record.Schedule.DurationHours)

	assert.Equal(t, quote.FinalPrice, record.Pricing.FinalPrice)
	assert.Equal(t, quote.FinalPrice, record.Payment.Amount)
	assert.Equal(t, "pending", record.Payment.Status)
	assert.Equal(t, "card", record.Payment.Method)
}

func TestBuildBookingRecordCopiesServices(t *testing.T) {
	pkg := availablePackage()
	pkg.Services = []models.PackageService{{Name: "Decor", Included: true}}
	req := NormalizedRequest{
		PackageID:     pkg.ID,
		Date:          time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		StartMinute:   600,
		EndMinute:     720,
		PaymentMethod: "cash",
	}

	record := BuildBookingRecord("user-1", req, pkg, Quote{Currency: "LKR"}, testNow)
	record.Services[0].Name = "changed"
	assert.Equal(t, "Decor", pkg.Services[0].Name)
}

func TestBuildBookingRecordPartialHourRoundsUp(t *testing.T) {
	req := NormalizedRequest{
		PackageID:     "pkg-1",
		Date:          time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		StartMinute:   600,  // 10:00
		EndMinute:     690,  // 11:30
		PaymentMethod: "cash",
	}
	record := BuildBookingRecord("user-1", req, availablePackage(), Quote{}, testNow)
	assert.Equal(t, 2, record.Schedule.DurationHours)
}

func TestBuildBookingRecordCopiesCustomizations(t *testing.T) {
	custom := map[string]string{"theme": "garden"}
	req := NormalizedRequest{
		PackageID:      "pkg-1",
		Date:           time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		StartMinute:    600,
		EndMinute:      720,
		Customizations: custom,
		PaymentMethod:  "cash",
	}
	record := BuildBookingRecord("user-1", req, availablePackage(), Quote{}, testNow)
	assert.Equal(t, "garden", record.Metadata["theme"])

	custom["theme"] = "beach"
	assert.Equal(t, "garden", record.Metadata["theme"])
}

func TestBuildBookingRecordUniqueIDs(t *testing.T) {
	req := NormalizedRequest{
		PackageID:     "pkg-1",
		Date:          time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		StartMinute:   600,
		EndMinute:     720,
		PaymentMethod: "cash",
	}
	a := BuildBookingRecord("user-1", req, availablePackage(), Quote{}, testNow)
	b := BuildBookingRecord("user-1", req, availablePackage(), Quote{}, testNow)
	assert.NotEqual(t, a.ID, b.ID)
}
