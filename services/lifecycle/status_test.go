package lifecycle

import (
	"testing"

	"brilho/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to models.ServiceStatus
		want     bool
	}{
		{models.StatusPending, models.StatusBudgetReady, true},
		{models.StatusBudgetReady, models.StatusWaitingSignal, true},
		{models.StatusBudgetReady, models.StatusPending, true}, // client rejection
		{models.StatusWaitingSignal, models.StatusScheduled, true},
		{models.StatusScheduled, models.StatusScheduled, true}, // assignment / final payment
		{models.StatusScheduled, models.StatusInProgress, true},
		{models.StatusInProgress, models.StatusCompleted, true},

		{models.StatusPending, models.StatusScheduled, false},
		{models.StatusPending, models.StatusWaitingSignal, false},
		{models.StatusWaitingSignal, models.StatusInProgress, false},
		{models.StatusScheduled, models.StatusCompleted, false},
		{models.StatusCompleted, models.StatusScheduled, false},
		{models.StatusCompleted, models.StatusCanceled, false},
		{models.StatusCanceled, models.StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanceledReachableFromAnyNonTerminalState(t *testing.T) {
	nonTerminal := []models.ServiceStatus{
		models.StatusPending,
		models.StatusBudgetReady,
		models.StatusWaitingSignal,
		models.StatusScheduled,
		models.StatusInProgress,
	}
	for _, from := range nonTerminal {
		assert.True(t, CanTransition(from, models.StatusCanceled), "cancel from %s", from)
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, models.StatusScheduled, NormalizeStatus("CONFIRMED"))
	assert.Equal(t, models.StatusScheduled, NormalizeStatus("confirmed"))
	assert.Equal(t, models.StatusScheduled, NormalizeStatus(" scheduled "))
	assert.Equal(t, models.StatusCompleted, NormalizeStatus("completed"))
	assert.Equal(t, models.ServiceStatus("BOGUS"), NormalizeStatus("bogus"))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(models.StatusPending))
	assert.True(t, IsValidStatus(models.StatusCanceled))
	assert.False(t, IsValidStatus(models.ServiceStatus("CONFIRMED")))
	assert.False(t, IsValidStatus(models.ServiceStatus("")))
}
