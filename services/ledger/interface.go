package ledger

import (
	"context"

	"brilho/models"
)

// LedgerService is the admin surface over the financial transaction ledger.
type LedgerService interface {
	List(ctx context.Context) ([]models.Transaction, error)
	// Append records a ledger entry, either synthesized by settlement or
	// entered manually by the admin (e.g. an ad-hoc payout).
	Append(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
	// MarkPaid confirms a PENDING entry. PAID and FAILED entries are
	// left untouched.
	MarkPaid(ctx context.Context, id string) (*models.Transaction, error)
	// Remove deletes an entry permanently. Admin-triggered only.
	Remove(ctx context.Context, id string) error
}
