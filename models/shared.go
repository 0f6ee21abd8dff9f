package models

import "time"

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// Notification is an in-record notification entry embedded on a user document.
type Notification struct {
	ID        string                 `bson:"id" json:"id"`
	Type      string                 `bson:"type" json:"type"` // e.g., "booking_confirmation", "payment_confirmation"
	Message   string                 `bson:"message" json:"message"`
	Data      map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
	Read      bool                   `bson:"read" json:"read"`
}

// Security groups credential fields shared by users and vendors.
// Plaintext values never hit the database; hashes never hit the wire.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}
