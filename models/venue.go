package models

import "time"

type Venue struct {
	ID          string    `bson:"id" json:"id"`
	VendorID    string    `bson:"vendorId" json:"vendorId"`
	Name        string    `bson:"name" json:"name"`
	City        string    `bson:"city" json:"city"`
	Address     string    `bson:"address" json:"address"`
	Capacity    int       `bson:"capacity" json:"capacity"` // maximum guest count
	PricePerDay int64     `bson:"pricePerDay" json:"pricePerDay"`
	Currency    string    `bson:"currency" json:"currency"`
	Amenities   []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Photos      []string  `bson:"photos,omitempty" json:"photos,omitempty"`
	LocationGeo GeoPoint  `bson:"locationGeo,omitzero" json:"locationGeo,omitzero"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
