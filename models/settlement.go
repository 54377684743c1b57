package models

// SettlementIntent captures one lifecycle transition for the settlement rule
// evaluator. It carries the pre- and post-transition state so each rule can
// guard against firing twice for the same change, plus the patch fields the
// amount and payout resolution formulas read.
type SettlementIntent struct {
	ServiceID         string        `json:"serviceId"`
	PrevStatus        ServiceStatus `json:"prevStatus"`
	NewStatus         ServiceStatus `json:"newStatus"`
	PrevPaymentStatus PaymentStatus `json:"prevPaymentStatus"`
	NewPaymentStatus  PaymentStatus `json:"newPaymentStatus"`
	Price             *float64      `json:"price,omitempty"`          // Patch override; falls back to the service price.
	CollaboratorID    *string       `json:"collaboratorId,omitempty"` // Patch override; falls back to the assigned collaborator.
}
