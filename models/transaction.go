package models

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TransactionPaid    TransactionStatus = "PAID"
	TransactionPending TransactionStatus = "PENDING"
	TransactionFailed  TransactionStatus = "FAILED"
)

// Transaction is one financial ledger entry. Entries are denormalized
// snapshots of their originating Service at creation time; they are never
// re-derived or re-synced afterwards. SourceServiceID exists for
// traceability only and carries no invariant.
type Transaction struct {
	ID              string            `bson:"id" json:"id"`
	Type            TransactionType   `bson:"type" json:"type"`
	Entity          string            `bson:"entity" json:"entity"`             // Counterparty display name.
	ServiceType     string            `bson:"service_type" json:"serviceType"`  // Label copied from the Service at creation.
	Amount          float64           `bson:"amount" json:"amount"`             // Positive decimal.
	Date            string            `bson:"date" json:"date"`                 // Entry creation day, "YYYY-MM-DD".
	Status          TransactionStatus `bson:"status" json:"status"`
	Method          string            `bson:"method" json:"method"`             // Payment rail label, e.g. "PIX/Link".
	SourceServiceID string            `bson:"source_service_id,omitempty" json:"sourceServiceId,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
}
