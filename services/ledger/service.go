package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	transactionRepo "brilho/database/repository/transaction"
	"brilho/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTransactionNotFound is returned when the referenced entry is missing.
var ErrTransactionNotFound = errors.New("transaction not found")

// DefaultLedgerService implements LedgerService over the transaction repository.
type DefaultLedgerService struct {
	Repo   transactionRepo.TransactionRepository
	Logger *zap.Logger
}

func (s *DefaultLedgerService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultLedgerService) Append(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	if txn.Amount <= 0 {
		return nil, fmt.Errorf("transaction amount must be positive")
	}
	if txn.Type != models.TransactionIncome && txn.Type != models.TransactionExpense {
		return nil, fmt.Errorf("unknown transaction type: %q", txn.Type)
	}
	if txn.Status == "" {
		txn.Status = models.TransactionPending
	}
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}
	if txn.Date == "" {
		txn.Date = txn.CreatedAt.Format("2006-01-02")
	}

	if _, err := s.Repo.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}
	return &txn, nil
}

// MarkPaid moves a PENDING entry to PAID. Entries already PAID or FAILED
// are returned unchanged.
func (s *DefaultLedgerService) MarkPaid(ctx context.Context, id string) (*models.Transaction, error) {
	txn, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, transactionRepo.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	if txn.Status != models.TransactionPending {
		s.Logger.Debug("mark-paid on non-pending transaction, no-op",
			zap.String("id", id),
			zap.String("status", string(txn.Status)))
		return txn, nil
	}

	if err := s.Repo.UpdateStatus(ctx, id, models.TransactionPaid); err != nil {
		return nil, fmt.Errorf("mark transaction paid: %w", err)
	}
	txn.Status = models.TransactionPaid
	return txn, nil
}

func (s *DefaultLedgerService) Remove(ctx context.Context, id string) error {
	err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, transactionRepo.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}
