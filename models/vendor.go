package models

import "time"

type VendorProfile struct {
	BusinessName string   `bson:"businessName" json:"businessName"`
	Category     string   `bson:"category" json:"category"` // e.g., "photography", "catering", "decor"
	Email        string   `bson:"email" json:"email"`
	PhoneNumber  string   `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	City         string   `bson:"city" json:"city"`
	Rating       float64  `bson:"rating" json:"rating"`
	ReviewCount  int      `bson:"reviewCount" json:"reviewCount"`
	Portfolio    []string `bson:"portfolio,omitempty" json:"portfolio,omitempty"` // Cloudinary public IDs
	LocationGeo  GeoPoint `bson:"locationGeo,omitzero" json:"locationGeo,omitzero"`
}

type Vendor struct {
	ID                string        `bson:"id" json:"id"`
	Profile           VendorProfile `bson:"profile" json:"profile"`
	Security          Security      `bson:"security" json:"security,omitzero"`
	Status            string        `bson:"status" json:"status"` // "active", "suspended"
	Verified          bool          `bson:"verified" json:"verified"`
	CompletedBookings int           `bson:"completedBookings" json:"completedBookings"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updatedAt" json:"updatedAt"`
}
