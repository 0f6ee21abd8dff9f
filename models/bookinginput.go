package models

// BookingSchedule is the requested time window, as supplied by the caller.
// Date is "YYYY-MM-DD"; times are "HH:MM" wall-clock strings.
type BookingSchedule struct {
	Date          string `bson:"date" json:"date"`
	StartTime     string `bson:"startTime" json:"startTime"`
	EndTime       string `bson:"endTime" json:"endTime"`
	DurationHours int    `bson:"durationHours,omitempty" json:"durationHours,omitempty"`
}

// BookingRequestInput is the transient payload of a booking attempt.
// It is constructed from caller input and never persisted as-is.
type BookingRequestInput struct {
	PackageID      string            `json:"packageId"`
	VenueID        string            `json:"venueId,omitempty"`
	Schedule       BookingSchedule   `json:"schedule"`
	GuestCount     int               `json:"guestCount,omitempty"`
	Customizations map[string]string `json:"customizations,omitempty"`
	PaymentMethod  string            `json:"paymentMethod"` // "card" or "cash"
	Notes          string            `json:"notes,omitempty"`
}
