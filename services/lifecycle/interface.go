package lifecycle

import (
	"context"

	"brilho/models"
)

// LifecycleService owns a service from request through settlement.
type LifecycleService interface {
	Create(ctx context.Context, svc models.Service) (*models.Service, error)
	Transition(ctx context.Context, id string, newStatus models.ServiceStatus, patch models.ServicePatch) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
}

// SettlementDispatcher hands a settlement intent off for evaluation. The
// engine logs dispatch failures and moves on; a failed dispatch never
// blocks or reverses the status change that produced it.
type SettlementDispatcher interface {
	Dispatch(ctx context.Context, intent models.SettlementIntent) error
}

// SettingsSource yields the current platform settings snapshot.
type SettingsSource interface {
	Get(ctx context.Context) (*models.PlatformSettings, error)
}
