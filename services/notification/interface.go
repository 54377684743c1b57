package notification

import (
	"context"

	"brilho/models"
)

// EventSink receives human-readable lifecycle events. Delivery is
// best-effort: the engine logs a failed publish and carries on.
type EventSink interface {
	Publish(ctx context.Context, event models.LifecycleEvent) error
}
