package transactionRepo

import (
	"context"

	"brilho/models"
)

// TransactionRepository defines the interface for ledger data access.
type TransactionRepository interface {
	Append(ctx context.Context, txn models.Transaction) (string, error)
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error
	DeleteByID(ctx context.Context, id string) error
}
