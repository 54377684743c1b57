package models

import "time"

// ServicePatch is the partial update that may accompany a lifecycle
// transition. Nil pointers and nil slices mean "leave untouched".
type ServicePatch struct {
	Price              *float64       `json:"price,omitempty"`
	Summary            *string        `json:"summary,omitempty"`
	Notes              *string        `json:"notes,omitempty"`
	PaymentStatus      *PaymentStatus `json:"paymentStatus,omitempty"`
	PaymentLinkSignal  *string        `json:"paymentLinkSignal,omitempty"`
	PaymentLinkFinal   *string        `json:"paymentLinkFinal,omitempty"`
	PaymentProofSignal *string        `json:"paymentProofSignal,omitempty"`
	PaymentProofFinal  *string        `json:"paymentProofFinal,omitempty"`
	CheckedInAt        *time.Time     `json:"checkedInAt,omitempty"`
	PhotosBefore       []string       `json:"photosBefore,omitempty"`
	PhotosAfter        []string       `json:"photosAfter,omitempty"`
	CollaboratorID     *string        `json:"collaboratorId,omitempty"`
	CollaboratorName   *string        `json:"collaboratorName,omitempty"` // Resolved by the engine on assignment; kept in lockstep with the id.
	Duration           *string        `json:"duration,omitempty"`
}
