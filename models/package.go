package models

import "time"

// All monetary amounts across the model layer are integer minor units
// (cents). Division happens only at render time, never in pricing math.

type PackagePricing struct {
	BasePrice          int64   `bson:"basePrice" json:"basePrice"`                               // minor units
	DiscountedPrice    int64   `bson:"discountedPrice,omitempty" json:"discountedPrice,omitempty"` // minor units, 0 when unset
	DiscountPercentage float64 `bson:"discountPercentage,omitempty" json:"discountPercentage,omitempty"`
	Currency           string  `bson:"currency" json:"currency"` // e.g., "LKR"
}

type PackageAvailability struct {
	IsAvailable        bool     `bson:"isAvailable" json:"isAvailable"`
	CurrentBookings    int      `bson:"currentBookings" json:"currentBookings"`
	MaxBookings        int      `bson:"maxBookings" json:"maxBookings"`
	AdvanceBookingDays int      `bson:"advanceBookingDays" json:"advanceBookingDays"`
	BlackoutDates      []string `bson:"blackoutDates,omitempty" json:"blackoutDates,omitempty"` // "YYYY-MM-DD"
}

type PackageService struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Included    bool   `bson:"included" json:"included"`
}

// Package is a bookable offering owned by a vendor. Availability counters
// are only ever mutated through the package repository's reserve/release
// operations; no other code path writes currentBookings or isAvailable.
type Package struct {
	ID           string              `bson:"id" json:"id"`
	VendorID     string              `bson:"vendorId" json:"vendorId"`
	Name         string              `bson:"name" json:"name"`
	Category     string              `bson:"category" json:"category"`
	Description  string              `bson:"description,omitempty" json:"description,omitempty"`
	Pricing      PackagePricing      `bson:"pricing" json:"pricing"`
	Availability PackageAvailability `bson:"availability" json:"availability"`
	Services     []PackageService    `bson:"services" json:"services"`
	Photos       []string            `bson:"photos,omitempty" json:"photos,omitempty"`
	IsActive     bool                `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}
