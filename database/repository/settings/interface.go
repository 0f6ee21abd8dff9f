package settingsRepo

import "weddify/models"

// SettingsRepository persists the single platform settings document.
type SettingsRepository interface {
	// Get retrieves the platform settings. Returns (nil, nil) when the
	// document has never been written.
	Get() (*models.PlatformSettings, error)
	// Patch atomically applies the given field updates in a single
	// write, seeding absent fields from defaults when the document is
	// created. Returns the resulting document.
	Patch(set map[string]interface{}, defaults map[string]interface{}) (*models.PlatformSettings, error)
}
