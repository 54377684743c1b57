package lifecycle

import (
	"strings"

	"brilho/models"
)

// transitions is the legal status graph. SCHEDULED loops on itself for
// collaborator assignment and final-payment confirmation; CANCELED is
// reachable from every non-terminal state.
var transitions = map[models.ServiceStatus][]models.ServiceStatus{
	models.StatusPending:       {models.StatusBudgetReady, models.StatusCanceled},
	models.StatusBudgetReady:   {models.StatusWaitingSignal, models.StatusPending, models.StatusCanceled},
	models.StatusWaitingSignal: {models.StatusScheduled, models.StatusCanceled},
	models.StatusScheduled:     {models.StatusScheduled, models.StatusInProgress, models.StatusCanceled},
	models.StatusInProgress:    {models.StatusCompleted, models.StatusCanceled},
	models.StatusCompleted:     {},
	models.StatusCanceled:      {},
}

// IsValidStatus reports whether s is a known lifecycle state.
func IsValidStatus(s models.ServiceStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to models.ServiceStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == to {
			return true
		}
	}
	return false
}

// NormalizeStatus maps inbound status strings onto canonical states.
// "CONFIRMED" survives as a display alias for SCHEDULED at this boundary
// only; the engine itself knows a single on-calendar state.
func NormalizeStatus(raw string) models.ServiceStatus {
	s := models.ServiceStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if s == "CONFIRMED" {
		return models.StatusScheduled
	}
	return s
}
