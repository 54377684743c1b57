package models

import (
	"strconv"
	"time"
)

// ServiceStatus is the lifecycle state of a Service.
type ServiceStatus string

const (
	StatusPending       ServiceStatus = "PENDING"        // Requested, awaiting an admin budget.
	StatusBudgetReady   ServiceStatus = "BUDGET_READY"   // Budget sent, awaiting client decision.
	StatusWaitingSignal ServiceStatus = "WAITING_SIGNAL" // Approved, awaiting the 50% signal payment.
	StatusScheduled     ServiceStatus = "SCHEDULED"      // On calendar, awaiting execution.
	StatusInProgress    ServiceStatus = "IN_PROGRESS"    // Collaborator checked in.
	StatusCompleted     ServiceStatus = "COMPLETED"      // Finalized with after photos.
	StatusCanceled      ServiceStatus = "CANCELED"       // Aborted by admin or client.
)

// PaymentStatus is the payment sub-state, an independent axis from ServiceStatus.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentSignalPaid PaymentStatus = "SIGNAL_PAID"
	PaymentFullPaid   PaymentStatus = "FULL_PAID"
)

// Service represents one cleaning booking, from request through settlement.
type Service struct {
	ID                 string        `bson:"id" json:"id"`                                                  // Unique service identifier (UUID), immutable.
	ClientID           string        `bson:"client_id" json:"clientId"`                                     // Client who requested the service.
	ClientName         string        `bson:"client_name" json:"clientName"`                                 // Denormalized client name snapshot.
	CollaboratorID     string        `bson:"collaborator_id,omitempty" json:"collaboratorId,omitempty"`     // Assigned collaborator, set on assignment.
	CollaboratorName   string        `bson:"collaborator_name,omitempty" json:"collaboratorName,omitempty"` // Denormalized, always set alongside CollaboratorID.
	Type               string        `bson:"type" json:"type"`                                              // Service type label, e.g. "Limpeza Padrão".
	Date               string        `bson:"date" json:"date"`                                              // Scheduled day in "YYYY-MM-DD" format.
	Time               string        `bson:"time" json:"time"`                                              // Local time-of-day, e.g. "14:00".
	Address            string        `bson:"address" json:"address"`                                        // Free-text service address.
	Duration           string        `bson:"duration,omitempty" json:"duration,omitempty"`                  // Duration in hours; numeric string tolerated.
	Price              *float64      `bson:"price,omitempty" json:"price,omitempty"`                        // Nil until budgeted.
	Notes              string        `bson:"notes,omitempty" json:"notes,omitempty"`                        // Appended-to on rejection, never replaced.
	Summary            string        `bson:"summary,omitempty" json:"summary,omitempty"`                    // Budget summary written by the admin.
	Status             ServiceStatus `bson:"status" json:"status"`
	PaymentStatus      PaymentStatus `bson:"payment_status" json:"paymentStatus"`
	PaymentLinkSignal  string        `bson:"payment_link_signal,omitempty" json:"paymentLinkSignal,omitempty"`
	PaymentLinkFinal   string        `bson:"payment_link_final,omitempty" json:"paymentLinkFinal,omitempty"`
	PaymentProofSignal string        `bson:"payment_proof_signal,omitempty" json:"paymentProofSignal,omitempty"`
	PaymentProofFinal  string        `bson:"payment_proof_final,omitempty" json:"paymentProofFinal,omitempty"`
	CheckedInAt        *time.Time    `bson:"checked_in_at,omitempty" json:"checkedInAt,omitempty"` // Set once, on check-in.
	PhotosBefore       []string      `bson:"photos_before,omitempty" json:"photosBefore,omitempty"`
	PhotosAfter        []string      `bson:"photos_after,omitempty" json:"photosAfter,omitempty"`
	CreatedAt          time.Time     `bson:"created_at" json:"createdAt"` // Immutable, sort key for listings.
}

// IsTerminal reports whether the status admits no further transitions.
func (s ServiceStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// DurationHours coerces the stored duration to integer hours. Non-numeric or
// missing values fall back to a bracket derived from the price (>300 → 8h,
// >180 → 6h, else 4h).
func (s *Service) DurationHours() int {
	if s.Duration != "" {
		if h, err := strconv.ParseFloat(s.Duration, 64); err == nil && h > 0 {
			return int(h)
		}
	}
	price := 0.0
	if s.Price != nil {
		price = *s.Price
	}
	switch {
	case price > 300:
		return 8
	case price > 180:
		return 6
	default:
		return 4
	}
}
