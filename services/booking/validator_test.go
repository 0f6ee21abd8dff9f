package booking

import (
	"testing"
	"time"

	"weddify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func availablePackage() models.Package {
	return models.Package{
		ID:       "pkg-1",
		VendorID: "vendor-1",
		Name:     "Gold Photography",
		Category: "photography",
		Pricing: models.PackagePricing{
			BasePrice: 10000000,
			Currency:  "LKR",
		},
		Availability: models.PackageAvailability{
			IsAvailable:        true,
			CurrentBookings:    2,
			MaxBookings:        10,
			AdvanceBookingDays: 90,
		},
		IsActive: true,
	}
}

func validRequest() models.BookingRequestInput {
	return models.BookingRequestInput{
		PackageID: "pkg-1",
		Schedule: models.BookingSchedule{
			Date:      "2026-07-15",
			StartTime: "10:00",
			EndTime:   "18:00",
		},
		GuestCount:    150,
		PaymentMethod: "card",
	}
}

func rules(violations []RuleViolation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Rule
	}
	return out
}

func TestValidateBookingRequestAccepts(t *testing.T) {
	normalized, violations := ValidateBookingRequest(validRequest(), availablePackage(), nil, testNow)
	require.Empty(t, violations)
	require.NotNil(t, normalized)

	assert.Equal(t, "pkg-1", normalized.PackageID)
	assert.Equal(t, 600, normalized.StartMinute)
	assert.Equal(t, 1080, normalized.EndMinute)
	assert.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), normalized.Date)
	assert.Equal(t, "card", normalized.PaymentMethod)
}

func TestValidateBookingRequestDefaultsPaymentToCash(t *testing.T) {
	req := validRequest()
	req.PaymentMethod = ""
	normalized, violations := ValidateBookingRequest(req, availablePackage(), nil, testNow)
	require.Empty(t, violations)
	assert.Equal(t, "cash", normalized.PaymentMethod)
}

func TestValidateBookingRequestRequiredFields(t *testing.T) {
	req := models.BookingRequestInput{}
	normalized, violations := ValidateBookingRequest(req, availablePackage(), nil, testNow)
	assert.Nil(t, normalized)

	got := rules(violations)
	assert.Contains(t, got, RuleRequiredFields)
	// packageId, date, startTime, endTime all missing.
	assert.Len(t, violations, 4)
}

func TestValidateBookingRequestCollectsAllViolations(t *testing.T) {
	pkg := availablePackage()
	pkg.Availability.IsAvailable = false
	pkg.Availability.CurrentBookings = pkg.Availability.MaxBookings

	req := validRequest()
	req.Schedule.StartTime = "18:00"
	req.Schedule.EndTime = "10:00"

	normalized, violations := ValidateBookingRequest(req, pkg, nil, testNow)
	assert.Nil(t, normalized)

	got := rules(violations)
	assert.Contains(t, got, RuleUnavailable)
	assert.Contains(t, got, RuleCapacity)
	assert.Contains(t, got, RuleTimeOrder)
	assert.Len(t, violations, 3)
}

func TestValidateBookingRequestPastDate(t *testing.T) {
	req := validRequest()
	req.Schedule.Date = "2026-05-31"
	_, violations := ValidateBookingRequest(req, availablePackage(), nil, testNow)
	assert.Equal(t, []string{RuleDatePast}, rules(violations))
}

func TestValidateBookingRequestSameDayAllowed(t *testing.T) {
	req := validRequest()
	req.Schedule.Date = "2026-06-01"
	_, violations := ValidateBookingRequest(req, availablePackage(), nil, testNow)
	assert.Empty(t, violations)
}

func TestValidateBookingRequestAdvanceWindow(t *testing.T) {
	pkg := availablePackage()
	pkg.Availability.AdvanceBookingDays = 30

	req := validRequest()
	req.Schedule.Date = "2026-07-15" // 44 days out
	_, violations := ValidateBookingRequest(req, pkg, nil, testNow)
	assert.Equal(t, []string{RuleAdvanceWindow}, rules(violations))

	// Exactly on the boundary is allowed.
	req.Schedule.Date = "2026-07-01"
	_, violations = ValidateBookingRequest(req, pkg, nil, testNow)
	assert.Empty(t, violations)
}

func TestValidateBookingRequestBlackoutDate(t *testing.T) {
	pkg := availablePackage()
	pkg.Availability.BlackoutDates = []string{"2026-07-15", "2026-08-01"}

	_, violations := ValidateBookingRequest(validRequest(), pkg, nil, testNow)
	assert.Equal(t, []string{RuleBlackoutDate}, rules(violations))
}

func TestValidateBookingRequestEqualTimesRejected(t *testing.T) {
	req := validRequest()
	req.Schedule.StartTime = "10:00"
	req.Schedule.EndTime = "10:00"
	_, violations := ValidateBookingRequest(req, availablePackage(), nil, testNow)
	assert.Equal(t, []string{RuleTimeOrder}, rules(violations))
}

func TestValidateBookingRequestUnparseableDateSkipsDateRules(t *testing.T) {
	req := validRequest()
	req.Schedule.Date = "15/07/2026"
	_, violations := ValidateBookingRequest(req, availablePackage(), nil, testNow)

	// Only the structural violation, no cascade from past/window/blackout.
	assert.Equal(t, []string{RuleRequiredFields}, rules(violations))
}

func TestValidateBookingRequestGuestCount(t *testing.T) {
	venue := &models.Venue{ID: "venue-1", Capacity: 100}

	req := validRequest()
	req.VenueID = "venue-1"
	req.GuestCount = 150
	_, violations := ValidateBookingRequest(req, availablePackage(), venue, testNow)
	assert.Equal(t, []string{RuleGuestCount}, rules(violations))

	req.GuestCount = 100
	normalized, violations := ValidateBookingRequest(req, availablePackage(), venue, testNow)
	assert.Empty(t, violations)
	assert.Equal(t, 100, normalized.GuestCount)
}

func TestValidateBookingRequestNegativeGuestCount(t *testing.T) {
	req := validRequest()
	req.GuestCount = -1
	_, violations := ValidateBookingRequest(req, availablePackage(), nil, testNow)
	assert.Equal(t, []string{RuleGuestCount}, rules(violations))
}

func TestValidateBookingRequestGuestCountIgnoredWithoutVenue(t *testing.T) {
	req := validRequest()
	req.GuestCount = 5000
	_, violations := ValidateBookingRequest(req, availablePackage(), nil, testNow)
	assert.Empty(t, violations)
}

func TestValidateBookingRequestIsPure(t *testing.T) {
	req := validRequest()
	pkg := availablePackage()
	before := pkg

	ValidateBookingRequest(req, pkg, nil, testNow)
	ValidateBookingRequest(req, pkg, nil, testNow)
	assert.Equal(t, before, pkg)
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"10:60", 0, false},
		{"10", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := parseClock(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.minutes, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}
