package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"weddify/models"
)

// Rule identifiers reported in violations.
const (
	RuleRequiredFields = "required_fields"
	RuleUnavailable    = "package_unavailable"
	RuleCapacity       = "capacity"
	RuleDatePast       = "date_past"
	RuleAdvanceWindow  = "advance_window"
	RuleBlackoutDate   = "blackout_date"
	RuleTimeOrder      = "time_order"
	RuleGuestCount     = "guest_count"
)

const dayLayout = "2006-01-02"

// NormalizedRequest is the validated, parsed form of a booking request.
// Times are minutes from midnight; the date is truncated to midnight.
type NormalizedRequest struct {
	PackageID      string
	VenueID        string
	Date           time.Time
	StartMinute    int
	EndMinute      int
	GuestCount     int
	Customizations map[string]string
	PaymentMethod  string
	Notes          string
}

// ValidateBookingRequest evaluates a booking request against an
// already-fetched package, optional venue, and the current time. It is
// pure: no I/O, no clock reads, no mutation of its inputs.
//
// All rules are evaluated and every violation is collected, rather than
// stopping at the first failure, so a caller can fix a whole request in
// one round trip. Rules that depend on an unparseable field are skipped;
// the structural violation already covers them.
func ValidateBookingRequest(
	req models.BookingRequestInput,
	pkg models.Package,
	venue *models.Venue,
	now time.Time,
) (*NormalizedRequest, []RuleViolation) {
	var violations []RuleViolation

	fail := func(rule, msg string) {
		violations = append(violations, RuleViolation{Rule: rule, Message: msg})
	}

	// 1. Required fields.
	if strings.TrimSpace(req.PackageID) == "" {
		fail(RuleRequiredFields, "packageId is required")
	}
	if req.Schedule.Date == "" {
		fail(RuleRequiredFields, "schedule.date is required")
	}
	if req.Schedule.StartTime == "" {
		fail(RuleRequiredFields, "schedule.startTime is required")
	}
	if req.Schedule.EndTime == "" {
		fail(RuleRequiredFields, "schedule.endTime is required")
	}

	// 2. Package availability flag.
	if !pkg.Availability.IsAvailable || !pkg.IsActive {
		fail(RuleUnavailable, "package is not currently accepting bookings")
	}

	// 3. Remaining capacity.
	if pkg.Availability.CurrentBookings >= pkg.Availability.MaxBookings {
		fail(RuleCapacity, "package is fully booked")
	}

	// 4-6. Date rules, all at day granularity.
	var date time.Time
	if req.Schedule.Date != "" {
		parsed, err := time.ParseInLocation(dayLayout, req.Schedule.Date, now.Location())
		if err != nil {
			fail(RuleRequiredFields, fmt.Sprintf("schedule.date %q is not a valid YYYY-MM-DD date", req.Schedule.Date))
		} else {
			date = parsed
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

			if date.Before(today) {
				fail(RuleDatePast, "booking date is in the past")
			}

			latest := today.AddDate(0, 0, pkg.Availability.AdvanceBookingDays)
			if date.After(latest) {
				fail(RuleAdvanceWindow, fmt.Sprintf(
					"booking date exceeds the advance booking window of %d days",
					pkg.Availability.AdvanceBookingDays))
			}

			for _, blackout := range pkg.Availability.BlackoutDates {
				if req.Schedule.Date == blackout {
					fail(RuleBlackoutDate, fmt.Sprintf("date %s is a blackout date for this package", blackout))
					break
				}
			}
		}
	}

	// 7. Time ordering.
	startMin, startErr := parseClock(req.Schedule.StartTime)
	endMin, endErr := parseClock(req.Schedule.EndTime)
	if req.Schedule.StartTime != "" && startErr != nil {
		fail(RuleRequiredFields, fmt.Sprintf("schedule.startTime %q is not a valid HH:MM time", req.Schedule.StartTime))
	}
	if req.Schedule.EndTime != "" && endErr != nil {
		fail(RuleRequiredFields, fmt.Sprintf("schedule.endTime %q is not a valid HH:MM time", req.Schedule.EndTime))
	}
	if startErr == nil && endErr == nil && startMin >= endMin {
		fail(RuleTimeOrder, "schedule.startTime must be before schedule.endTime")
	}

	// 8. Venue guest capacity, when a venue is attached.
	if venue != nil && req.GuestCount > 0 && req.GuestCount > venue.Capacity {
		fail(RuleGuestCount, fmt.Sprintf(
			"guest count %d exceeds venue capacity of %d", req.GuestCount, venue.Capacity))
	}
	if req.GuestCount < 0 {
		fail(RuleGuestCount, "guest count cannot be negative")
	}

	if len(violations) > 0 {
		return nil, violations
	}

	normalized := &NormalizedRequest{
		PackageID:      strings.TrimSpace(req.PackageID),
		VenueID:        strings.TrimSpace(req.VenueID),
		Date:           date,
		StartMinute:    startMin,
		EndMinute:      endMin,
		GuestCount:     req.GuestCount,
		Customizations: req.Customizations,
		PaymentMethod:  req.PaymentMethod,
		Notes:          strings.TrimSpace(req.Notes),
	}
	if normalized.PaymentMethod == "" {
		normalized.PaymentMethod = "cash"
	}
	return normalized, nil
}

// parseClock converts an "HH:MM" string to minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}
