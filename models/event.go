package models

import "time"

// LifecycleEvent is the human-readable notification emitted after a
// transition. Delivery is best-effort; the engine never depends on it.
type LifecycleEvent struct {
	ID        string         `json:"id"`
	ServiceID string         `json:"serviceId"`
	Type      string         `json:"type"` // e.g. "service.scheduled"
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
