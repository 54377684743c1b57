package lifecycle

import (
	"context"
	"errors"
	"testing"

	"brilho/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProcessor(services *fakeServiceRepo, ledgerStore *fakeLedger, collabs *fakeCollabRepo) *SettlementProcessor {
	return &SettlementProcessor{
		Services:      services,
		Collaborators: collabs,
		Ledger:        ledgerStore,
		Settings:      &stubSettings{settings: testSettings()},
		Logger:        zap.NewNop(),
	}
}

func TestProcessorDropsIntentForUnknownService(t *testing.T) {
	processor := newTestProcessor(newFakeServiceRepo(), &fakeLedger{}, &fakeCollabRepo{collabs: map[string]models.Collaborator{}})

	err := processor.Process(context.Background(), models.SettlementIntent{
		ServiceID:         "gone",
		PrevPaymentStatus: models.PaymentPending,
		NewPaymentStatus:  models.PaymentSignalPaid,
	})

	// Not worth redelivering; the service no longer exists.
	assert.NoError(t, err)
}

func TestProcessorSkipsPayoutForUnknownCollaborator(t *testing.T) {
	services := newFakeServiceRepo()
	services.services["s1"] = models.Service{
		ID: "s1", ClientName: "Maria", Duration: "4",
		Status: models.StatusCompleted, CollaboratorID: "ghost", CollaboratorName: "Ghost",
	}
	ledgerStore := &fakeLedger{}
	processor := newTestProcessor(services, ledgerStore, &fakeCollabRepo{collabs: map[string]models.Collaborator{}})

	err := processor.Process(context.Background(), models.SettlementIntent{
		ServiceID:  "s1",
		PrevStatus: models.StatusInProgress,
		NewStatus:  models.StatusCompleted,
	})

	assert.NoError(t, err)
	assert.Empty(t, ledgerStore.entries)
}

func TestProcessorPatchCollaboratorOverridesAssignment(t *testing.T) {
	services := newFakeServiceRepo()
	services.services["s1"] = models.Service{
		ID: "s1", ClientName: "Maria", Type: "Limpeza Padrão", Duration: "6",
		Status: models.StatusCompleted, CollaboratorID: "c1", CollaboratorName: "Ana",
	}
	collabs := &fakeCollabRepo{collabs: map[string]models.Collaborator{
		"c1": {ID: "c1", Name: "Ana", Level: models.LevelJunior},
		"c2": {ID: "c2", Name: "Beatriz", Level: models.LevelSenior},
	}}
	ledgerStore := &fakeLedger{}
	processor := newTestProcessor(services, ledgerStore, collabs)

	c2 := "c2"
	err := processor.Process(context.Background(), models.SettlementIntent{
		ServiceID:      "s1",
		PrevStatus:     models.StatusInProgress,
		NewStatus:      models.StatusCompleted,
		CollaboratorID: &c2,
	})

	require.NoError(t, err)
	require.Len(t, ledgerStore.entries, 1)
	assert.Equal(t, "Beatriz", ledgerStore.entries[0].Entity)
	assert.Equal(t, 100.0, ledgerStore.entries[0].Amount) // senior, 6h bracket
}

func TestProcessorReturnsErrorWhenSettingsUnavailable(t *testing.T) {
	services := newFakeServiceRepo()
	services.services["s1"] = models.Service{ID: "s1", ClientName: "Maria", Price: priceOf(200)}
	processor := newTestProcessor(services, &fakeLedger{}, &fakeCollabRepo{collabs: map[string]models.Collaborator{}})
	processor.Settings = &erroringSettings{}

	err := processor.Process(context.Background(), models.SettlementIntent{
		ServiceID:         "s1",
		PrevPaymentStatus: models.PaymentPending,
		NewPaymentStatus:  models.PaymentSignalPaid,
	})

	// Worth redelivering: the intent could not be evaluated at all.
	assert.Error(t, err)
}

type erroringSettings struct{}

func (e *erroringSettings) Get(context.Context) (*models.PlatformSettings, error) {
	return nil, errors.New("settings store down")
}
