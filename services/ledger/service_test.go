package ledger

import (
	"context"
	"testing"

	"brilho/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockTransactionRepo struct {
	mock.Mock
}

func (m *mockTransactionRepo) Append(ctx context.Context, txn models.Transaction) (string, error) {
	args := m.Called(ctx, txn)
	return args.String(0), args.Error(1)
}

func (m *mockTransactionRepo) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) ListAll(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockTransactionRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newLedgerService(repo *mockTransactionRepo) *DefaultLedgerService {
	return &DefaultLedgerService{Repo: repo, Logger: zap.NewNop()}
}

func TestAppendRejectsNonPositiveAmount(t *testing.T) {
	repo := new(mockTransactionRepo)
	svc := newLedgerService(repo)

	_, err := svc.Append(context.Background(), models.Transaction{
		Type: models.TransactionExpense, Entity: "Ana", Amount: 0,
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Append")
}

func TestAppendRejectsUnknownType(t *testing.T) {
	repo := new(mockTransactionRepo)
	svc := newLedgerService(repo)

	_, err := svc.Append(context.Background(), models.Transaction{
		Type: "TRANSFER", Entity: "Ana", Amount: 50,
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Append")
}

func TestAppendFillsDefaults(t *testing.T) {
	repo := new(mockTransactionRepo)
	svc := newLedgerService(repo)
	repo.On("Append", mock.Anything, mock.MatchedBy(func(txn models.Transaction) bool {
		return txn.ID != "" && txn.Date != "" && txn.Status == models.TransactionPending
	})).Return("t1", nil)

	txn, err := svc.Append(context.Background(), models.Transaction{
		Type: models.TransactionExpense, Entity: "Ana", Amount: 60, Method: "Transferência",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, models.TransactionPending, txn.Status)
	repo.AssertExpectations(t)
}

func TestMarkPaidConfirmsPendingEntry(t *testing.T) {
	repo := new(mockTransactionRepo)
	svc := newLedgerService(repo)
	repo.On("GetByID", mock.Anything, "t1").Return(&models.Transaction{
		ID: "t1", Status: models.TransactionPending,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, "t1", models.TransactionPaid).Return(nil)

	txn, err := svc.MarkPaid(context.Background(), "t1")

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionPaid, txn.Status)
	repo.AssertExpectations(t)
}

func TestMarkPaidIsNoOpOnPaidEntry(t *testing.T) {
	repo := new(mockTransactionRepo)
	svc := newLedgerService(repo)
	repo.On("GetByID", mock.Anything, "t1").Return(&models.Transaction{
		ID: "t1", Status: models.TransactionPaid,
	}, nil)

	txn, err := svc.MarkPaid(context.Background(), "t1")

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionPaid, txn.Status)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestMarkPaidIsNoOpOnFailedEntry(t *testing.T) {
	repo := new(mockTransactionRepo)
	svc := newLedgerService(repo)
	repo.On("GetByID", mock.Anything, "t1").Return(&models.Transaction{
		ID: "t1", Status: models.TransactionFailed,
	}, nil)

	txn, err := svc.MarkPaid(context.Background(), "t1")

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionFailed, txn.Status)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestRemoveDeletesEntry(t *testing.T) {
	repo := new(mockTransactionRepo)
	svc := newLedgerService(repo)
	repo.On("DeleteByID", mock.Anything, "t1").Return(nil)

	assert.NoError(t, svc.Remove(context.Background(), "t1"))
	repo.AssertExpectations(t)
}
