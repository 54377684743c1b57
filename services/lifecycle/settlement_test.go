package lifecycle

import (
	"testing"

	"brilho/models"

	"github.com/stretchr/testify/assert"
)

func testSettings() *models.PlatformSettings {
	return &models.PlatformSettings{
		ID: "platform",
		Payouts: models.PayoutMatrix{
			Junior: models.PayoutTier{Hours4: 60, Hours6: 80, Hours8: 100},
			Senior: models.PayoutTier{Hours4: 80, Hours6: 100, Hours8: 120},
			Master: models.PayoutTier{Hours4: 100, Hours6: 130, Hours8: 160},
		},
		HourlyRate:      35,
		MinDisplacement: 20,
	}
}

func priceOf(v float64) *float64 { return &v }

func TestEvaluateSignalIncome(t *testing.T) {
	svc := &models.Service{ID: "s1", ClientName: "Maria", Type: "Limpeza Padrão", Price: priceOf(200)}
	intent := models.SettlementIntent{
		ServiceID:         "s1",
		PrevStatus:        models.StatusWaitingSignal,
		NewStatus:         models.StatusScheduled,
		PrevPaymentStatus: models.PaymentPending,
		NewPaymentStatus:  models.PaymentSignalPaid,
	}

	entries := Evaluate(intent, svc, nil, testSettings())

	assert.Len(t, entries, 1)
	assert.Equal(t, models.TransactionIncome, entries[0].Type)
	assert.Equal(t, 100.0, entries[0].Amount)
	assert.Equal(t, "Maria", entries[0].Entity)
	assert.Equal(t, "Limpeza Padrão", entries[0].ServiceType)
	assert.Equal(t, models.TransactionPaid, entries[0].Status)
	assert.Equal(t, MethodIncome, entries[0].Method)
	assert.Equal(t, "s1", entries[0].SourceServiceID)
}

func TestEvaluateSignalIncomeIdempotent(t *testing.T) {
	svc := &models.Service{ID: "s1", ClientName: "Maria", Price: priceOf(200)}
	intent := models.SettlementIntent{
		PrevStatus:        models.StatusScheduled,
		NewStatus:         models.StatusScheduled,
		PrevPaymentStatus: models.PaymentSignalPaid,
		NewPaymentStatus:  models.PaymentSignalPaid,
	}

	assert.Empty(t, Evaluate(intent, svc, nil, testSettings()))
}

func TestEvaluatePatchPriceOverridesServicePrice(t *testing.T) {
	svc := &models.Service{ID: "s1", ClientName: "Maria", Price: priceOf(200)}
	intent := models.SettlementIntent{
		PrevPaymentStatus: models.PaymentPending,
		NewPaymentStatus:  models.PaymentSignalPaid,
		Price:             priceOf(300),
	}

	entries := Evaluate(intent, svc, nil, testSettings())
	assert.Len(t, entries, 1)
	assert.Equal(t, 150.0, entries[0].Amount)
}

func TestEvaluateZeroPriceYieldsNothing(t *testing.T) {
	svc := &models.Service{ID: "s1", ClientName: "Maria"}
	intent := models.SettlementIntent{
		PrevPaymentStatus: models.PaymentPending,
		NewPaymentStatus:  models.PaymentSignalPaid,
	}

	assert.Empty(t, Evaluate(intent, svc, nil, testSettings()))
}

func TestEvaluateIncomeHalvesSumToPrice(t *testing.T) {
	svc := &models.Service{ID: "s1", ClientName: "Maria", Price: priceOf(333)}

	signal := Evaluate(models.SettlementIntent{
		PrevPaymentStatus: models.PaymentPending,
		NewPaymentStatus:  models.PaymentSignalPaid,
	}, svc, nil, testSettings())
	final := Evaluate(models.SettlementIntent{
		PrevPaymentStatus: models.PaymentSignalPaid,
		NewPaymentStatus:  models.PaymentFullPaid,
	}, svc, nil, testSettings())

	assert.Len(t, signal, 1)
	assert.Len(t, final, 1)
	assert.InDelta(t, 333.0, signal[0].Amount+final[0].Amount, 0.001)
}

func TestEvaluatePayoutOnCompletion(t *testing.T) {
	svc := &models.Service{ID: "s1", ClientName: "Maria", Type: "Limpeza Pós-Obra", Duration: "4", CollaboratorID: "c1", CollaboratorName: "Ana"}
	collab := &models.Collaborator{ID: "c1", Name: "Ana", Level: models.LevelJunior}
	intent := models.SettlementIntent{
		PrevStatus: models.StatusInProgress,
		NewStatus:  models.StatusCompleted,
	}

	entries := Evaluate(intent, svc, collab, testSettings())

	assert.Len(t, entries, 1)
	assert.Equal(t, models.TransactionExpense, entries[0].Type)
	assert.Equal(t, 60.0, entries[0].Amount)
	assert.Equal(t, "Ana", entries[0].Entity)
	assert.Equal(t, "Repasse: Limpeza Pós-Obra", entries[0].ServiceType)
	assert.Equal(t, models.TransactionPending, entries[0].Status)
	assert.Equal(t, MethodPayout, entries[0].Method)
}

func TestEvaluatePayoutIdempotent(t *testing.T) {
	svc := &models.Service{ID: "s1", Duration: "4", CollaboratorID: "c1"}
	collab := &models.Collaborator{ID: "c1", Name: "Ana", Level: models.LevelJunior}
	intent := models.SettlementIntent{
		PrevStatus: models.StatusCompleted,
		NewStatus:  models.StatusCompleted,
	}

	assert.Empty(t, Evaluate(intent, svc, collab, testSettings()))
}

func TestEvaluateNoCollaboratorNoPayout(t *testing.T) {
	// A completed service without an assigned collaborator settles no
	// payout. Current product behavior, asserted as such.
	svc := &models.Service{ID: "s1", Duration: "4"}
	intent := models.SettlementIntent{
		PrevStatus: models.StatusInProgress,
		NewStatus:  models.StatusCompleted,
	}

	assert.Empty(t, Evaluate(intent, svc, nil, testSettings()))
}

func TestPayoutAmountMatrixLookup(t *testing.T) {
	matrix := testSettings().Payouts

	assert.Equal(t, 100.0, PayoutAmount(matrix, models.LevelSenior, 6))
	assert.Equal(t, 60.0, PayoutAmount(matrix, models.LevelJunior, 3))
	assert.Equal(t, 160.0, PayoutAmount(matrix, models.LevelMaster, 10))
}

func TestPayoutAmountBracketBoundaries(t *testing.T) {
	matrix := testSettings().Payouts

	assert.Equal(t, 80.0, PayoutAmount(matrix, models.LevelSenior, 4))
	assert.Equal(t, 100.0, PayoutAmount(matrix, models.LevelSenior, 5))
	assert.Equal(t, 120.0, PayoutAmount(matrix, models.LevelSenior, 9))
}

func TestPayoutAmountUnknownLevelFallsBack(t *testing.T) {
	matrix := testSettings().Payouts

	assert.Equal(t, 80.0, PayoutAmount(matrix, models.CollaboratorLevel("TRAINEE"), 4))
	assert.Equal(t, 80.0, PayoutAmount(matrix, "", 8))
}

func TestPayoutAmountLevelCaseInsensitive(t *testing.T) {
	matrix := testSettings().Payouts

	assert.Equal(t, 60.0, PayoutAmount(matrix, models.CollaboratorLevel("junior"), 4))
	assert.Equal(t, 130.0, PayoutAmount(matrix, models.CollaboratorLevel("Master"), 6))
}
