package models

import "time"

// PlatformSettings is the single persisted platform configuration document.
// It replaces mutable in-process settings so values survive restarts.
type PlatformSettings struct {
	ID                 string    `bson:"id" json:"id"` // always "platform"
	TaxRateBps         int       `bson:"taxRateBps" json:"taxRateBps"`
	DefaultAdvanceDays int       `bson:"defaultAdvanceDays" json:"defaultAdvanceDays"`
	CommissionBps      int       `bson:"commissionBps" json:"commissionBps"`
	MaintenanceMode    bool      `bson:"maintenanceMode" json:"maintenanceMode"`
	UpdatedBy          string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}
