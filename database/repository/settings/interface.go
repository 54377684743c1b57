package settingsRepo

import (
	"context"

	"brilho/models"
)

// SettingsRepository defines the interface for the platform settings singleton.
type SettingsRepository interface {
	// Get loads the settings document, seeding defaults on first read.
	Get(ctx context.Context) (*models.PlatformSettings, error)
	// Replace overwrites the whole document with the given value.
	Replace(ctx context.Context, settings models.PlatformSettings) error
}
