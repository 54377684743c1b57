package serviceRepo

import (
	"context"

	"brilho/models"
)

// ServiceRepository defines the interface for service booking data access.
type ServiceRepository interface {
	Create(ctx context.Context, svc models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListAll(ctx context.Context) ([]models.Service, error)
	// UpdateFields applies a partial update. An unknown id is a silent
	// no-op, not an error surfaced to the engine.
	UpdateFields(ctx context.Context, id string, status *models.ServiceStatus, patch models.ServicePatch) error
}
