package settings

import (
	"context"

	"brilho/models"
)

// SettingsService exposes the platform settings singleton: the payout
// matrix plus the scalar reference values the admin screens edit.
type SettingsService interface {
	Get(ctx context.Context) (*models.PlatformSettings, error)
	Update(ctx context.Context, settings models.PlatformSettings) (*models.PlatformSettings, error)
}
