package models

import "time"

// Booking status values. Transitions past "pending" are driven by the
// booking-management workflow, never by the validator.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusRejected  = "rejected"
)

// Discount is an audit entry recorded for every price reduction,
// including ones derived automatically from the package's preset rate.
type Discount struct {
	Type      string    `bson:"type" json:"type"` // e.g., "package_discount"
	Amount    int64     `bson:"amount" json:"amount"`
	Reason    string    `bson:"reason" json:"reason"`
	AppliedAt time.Time `bson:"appliedAt" json:"appliedAt"`
}

type BookingPricing struct {
	BasePrice  int64      `bson:"basePrice" json:"basePrice"` // after discounts, minor units
	Discounts  []Discount `bson:"discounts" json:"discounts"`
	TaxRateBps int        `bson:"taxRateBps" json:"taxRateBps"`
	TaxAmount  int64      `bson:"taxAmount" json:"taxAmount"`
	FinalPrice int64      `bson:"finalPrice" json:"finalPrice"`
	Currency   string     `bson:"currency" json:"currency"`
}

type BookingPayment struct {
	Status          string `bson:"status" json:"status"` // "pending", "paid", "refunded"
	Method          string `bson:"method" json:"method"`
	Amount          int64  `bson:"amount" json:"amount"`
	InvoiceID       string `bson:"invoiceId,omitempty" json:"invoiceId,omitempty"`
	PaymentIntentID string `bson:"paymentIntentId,omitempty" json:"-"`
}

// Booking represents a confirmed booking record. Immutable once created
// except for status and payment sub-fields.
type Booking struct {
	ID            string            `bson:"id" json:"id"`
	UserID        string            `bson:"userId" json:"userId"`
	VendorID      string            `bson:"vendorId" json:"vendorId"`
	PackageID     string            `bson:"packageId" json:"packageId"`
	VenueID       string            `bson:"venueId,omitempty" json:"venueId,omitempty"`
	Services      []PackageService  `bson:"services" json:"services"`
	Schedule      BookingSchedule   `bson:"schedule" json:"schedule"`
	GuestCount    int               `bson:"guestCount,omitempty" json:"guestCount,omitempty"`
	Pricing       BookingPricing    `bson:"pricing" json:"pricing"`
	Status        string            `bson:"status" json:"status"`
	Payment       BookingPayment    `bson:"payment" json:"payment"`
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Metadata      map[string]string `bson:"metadata" json:"metadata"`
	Notifications []Notification    `bson:"notifications" json:"notifications"`
	Conflicts     []string          `bson:"conflicts" json:"conflicts"`
	IsActive      bool              `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}
