package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	settingsRepo "brilho/database/repository/settings"
	"brilho/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cacheKey = "settings:platform"
	cacheTTL = 10 * time.Minute
)

// DefaultSettingsService serves the settings document from a Redis snapshot
// when available, falling back to Mongo. Admin saves replace the whole
// document and refresh the snapshot; readers always see whatever was last
// fetched, with no staleness guarantee beyond the TTL.
type DefaultSettingsService struct {
	Repo   settingsRepo.SettingsRepository
	Cache  *redis.Client // Optional; nil disables the snapshot cache.
	Logger *zap.Logger
}

func (s *DefaultSettingsService) Get(ctx context.Context) (*models.PlatformSettings, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached models.PlatformSettings
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
			// Corrupt snapshot, fall through to the store.
		}
	}

	loaded, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load platform settings: %w", err)
	}
	s.cacheSnapshot(ctx, loaded)
	return loaded, nil
}

func (s *DefaultSettingsService) Update(ctx context.Context, settings models.PlatformSettings) (*models.PlatformSettings, error) {
	if err := validate(settings); err != nil {
		return nil, err
	}
	if err := s.Repo.Replace(ctx, settings); err != nil {
		return nil, fmt.Errorf("save platform settings: %w", err)
	}
	settings.ID = "platform"
	s.cacheSnapshot(ctx, &settings)
	return &settings, nil
}

func (s *DefaultSettingsService) cacheSnapshot(ctx context.Context, settings *models.PlatformSettings) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
		s.Logger.Warn("settings snapshot cache write failed", zap.Error(err))
	}
}

func validate(settings models.PlatformSettings) error {
	tiers := []models.PayoutTier{
		settings.Payouts.Junior,
		settings.Payouts.Senior,
		settings.Payouts.Master,
	}
	for _, tier := range tiers {
		if tier.Hours4 < 0 || tier.Hours6 < 0 || tier.Hours8 < 0 {
			return fmt.Errorf("payout amounts must not be negative")
		}
	}
	if settings.HourlyRate < 0 || settings.MinDisplacement < 0 {
		return fmt.Errorf("reference rates must not be negative")
	}
	return nil
}
