package admin

import (
	"context"

	"weddify/models"
)

// SettingsService exposes the persisted platform configuration.
// Settings live in the database with a short-lived Redis cache in front;
// they are never held in a mutable process-global.
type SettingsService interface {
	GetSettings(ctx context.Context) (*models.PlatformSettings, error)
	UpdateSettings(ctx context.Context, updatedBy string, patch SettingsPatch) (*models.PlatformSettings, error)
}

// SettingsPatch carries optional setting overrides; nil fields are left unchanged.
type SettingsPatch struct {
	TaxRateBps         *int  `json:"taxRateBps,omitempty"`
	DefaultAdvanceDays *int  `json:"defaultAdvanceDays,omitempty"`
	CommissionBps      *int  `json:"commissionBps,omitempty"`
	MaintenanceMode    *bool `json:"maintenanceMode,omitempty"`
}
