package admin

import (
	"context"
	"testing"
	"time"

	"weddify/config"
	"weddify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSettingsRepo mirrors the Mongo Patch contract: only the given
// fields are written, defaults seed the first write, and the last set
// map is kept for assertions.
type fakeSettingsRepo struct {
	stored  *models.PlatformSettings
	lastSet map[string]interface{}
}

func (r *fakeSettingsRepo) Get() (*models.PlatformSettings, error) {
	if r.stored == nil {
		return nil, nil
	}
	cp := *r.stored
	return &cp, nil
}

func (r *fakeSettingsRepo) Patch(set, defaults map[string]interface{}) (*models.PlatformSettings, error) {
	r.lastSet = set
	if r.stored == nil {
		r.stored = &models.PlatformSettings{ID: "platform"}
		r.apply(defaults)
	}
	r.apply(set)
	cp := *r.stored
	return &cp, nil
}

func (r *fakeSettingsRepo) apply(fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "taxRateBps":
			r.stored.TaxRateBps = v.(int)
		case "defaultAdvanceDays":
			r.stored.DefaultAdvanceDays = v.(int)
		case "commissionBps":
			r.stored.CommissionBps = v.(int)
		case "maintenanceMode":
			r.stored.MaintenanceMode = v.(bool)
		case "updatedBy":
			r.stored.UpdatedBy = v.(string)
		case "updatedAt":
			r.stored.UpdatedAt = v.(time.Time)
		}
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestGetSettingsFallsBackToDefaults(t *testing.T) {
	config.AppConfig.TaxRateBps = 1500
	config.AppConfig.DefaultAdvanceDays = 90

	svc := &DefaultSettingsService{Repo: &fakeSettingsRepo{}}
	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "platform", settings.ID)
	assert.Equal(t, 1500, settings.TaxRateBps)
	assert.Equal(t, 90, settings.DefaultAdvanceDays)
}

func TestUpdateSettingsPersistsPatch(t *testing.T) {
	config.AppConfig.TaxRateBps = 1500
	repo := &fakeSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	updated, err := svc.UpdateSettings(context.Background(), "admin-1", SettingsPatch{
		TaxRateBps:      intPtr(1800),
		MaintenanceMode: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, 1800, updated.TaxRateBps)
	assert.True(t, updated.MaintenanceMode)
	assert.Equal(t, "admin-1", updated.UpdatedBy)

	// Survives a restart: the next read comes from the repo, not defaults.
	svc2 := &DefaultSettingsService{Repo: repo}
	reread, err := svc2.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1800, reread.TaxRateBps)
}

func TestUpdateSettingsRejectsInvalidTaxRate(t *testing.T) {
	svc := &DefaultSettingsService{Repo: &fakeSettingsRepo{}}

	_, err := svc.UpdateSettings(context.Background(), "admin-1", SettingsPatch{TaxRateBps: intPtr(10001)})
	assert.Error(t, err)

	_, err = svc.UpdateSettings(context.Background(), "admin-1", SettingsPatch{TaxRateBps: intPtr(-1)})
	assert.Error(t, err)
}

func TestUpdateSettingsWritesOnlyPatchedFields(t *testing.T) {
	config.AppConfig.TaxRateBps = 1500
	config.AppConfig.DefaultAdvanceDays = 90
	repo := &fakeSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	_, err := svc.UpdateSettings(context.Background(), "admin-1", SettingsPatch{TaxRateBps: intPtr(1800)})
	require.NoError(t, err)

	// Unpatched fields never appear in the write, so a concurrent patch
	// of a different field cannot be clobbered.
	var keys []string
	for k := range repo.lastSet {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"taxRateBps", "updatedBy", "updatedAt"}, keys)

	// Two admins patching disjoint fields both land.
	_, err = svc.UpdateSettings(context.Background(), "admin-2", SettingsPatch{CommissionBps: intPtr(500)})
	require.NoError(t, err)

	reread, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, 1800, reread.TaxRateBps)
	assert.Equal(t, 500, reread.CommissionBps)
}

func TestUpdateSettingsNilFieldsUntouched(t *testing.T) {
	config.AppConfig.TaxRateBps = 1500
	config.AppConfig.DefaultAdvanceDays = 90
	repo := &fakeSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	updated, err := svc.UpdateSettings(context.Background(), "admin-1", SettingsPatch{
		CommissionBps: intPtr(500),
	})
	require.NoError(t, err)

	assert.Equal(t, 500, updated.CommissionBps)
	assert.Equal(t, 1500, updated.TaxRateBps)
	assert.Equal(t, 90, updated.DefaultAdvanceDays)
	assert.False(t, updated.MaintenanceMode)
}
