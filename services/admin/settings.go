package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weddify/config"
	settingsRepo "weddify/database/repository/settings"
	"weddify/models"
	"weddify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	settingsCacheKey = "platform:settings"
	settingsCacheTTL = 5 * time.Minute
)

// DefaultSettingsService implements SettingsService.
type DefaultSettingsService struct {
	Repo  settingsRepo.SettingsRepository
	Cache *redis.Client
}

// GetSettings returns persisted settings, falling back to configured
// defaults when nothing has been written yet.
func (s *DefaultSettingsService) GetSettings(ctx context.Context) (*models.PlatformSettings, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, settingsCacheKey).Result(); err == nil {
			var cached models.PlatformSettings
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	settings, err := s.Repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load platform settings: %w", err)
	}
	if settings == nil {
		settings = s.defaults()
	}

	s.cache(ctx, settings)
	return settings, nil
}

// UpdateSettings applies a partial patch in a single repository write.
// Only the patched fields are set, so two admins patching different
// fields concurrently cannot lose each other's update.
func (s *DefaultSettingsService) UpdateSettings(ctx context.Context, updatedBy string, patch SettingsPatch) (*models.PlatformSettings, error) {
	set := map[string]interface{}{}

	if patch.TaxRateBps != nil {
		if *patch.TaxRateBps < 0 || *patch.TaxRateBps > 10000 {
			return nil, fmt.Errorf("taxRateBps must be between 0 and 10000")
		}
		set["taxRateBps"] = *patch.TaxRateBps
	}
	if patch.DefaultAdvanceDays != nil {
		if *patch.DefaultAdvanceDays < 1 {
			return nil, fmt.Errorf("defaultAdvanceDays must be positive")
		}
		set["defaultAdvanceDays"] = *patch.DefaultAdvanceDays
	}
	if patch.CommissionBps != nil {
		set["commissionBps"] = *patch.CommissionBps
	}
	if patch.MaintenanceMode != nil {
		set["maintenanceMode"] = *patch.MaintenanceMode
	}
	set["updatedBy"] = updatedBy
	set["updatedAt"] = time.Now()

	def := s.defaults()
	defaults := map[string]interface{}{
		"taxRateBps":         def.TaxRateBps,
		"defaultAdvanceDays": def.DefaultAdvanceDays,
		"commissionBps":      def.CommissionBps,
		"maintenanceMode":    def.MaintenanceMode,
	}

	settings, err := s.Repo.Patch(set, defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to persist platform settings: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, settingsCacheKey).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate settings cache", zap.Error(err))
		}
	}
	s.cache(ctx, settings)
	return settings, nil
}

func (s *DefaultSettingsService) defaults() *models.PlatformSettings {
	return &models.PlatformSettings{
		ID:                 "platform",
		TaxRateBps:         config.AppConfig.TaxRateBps,
		DefaultAdvanceDays: config.AppConfig.DefaultAdvanceDays,
		UpdatedAt:          time.Now(),
	}
}

func (s *DefaultSettingsService) cache(ctx context.Context, settings *models.PlatformSettings) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, settingsCacheKey, raw, settingsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache platform settings", zap.Error(err))
	}
}
