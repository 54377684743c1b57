package tasks

import (
	"encoding/json"
	"time"

	"brilho/models"

	"github.com/hibiken/asynq"
)

const TypeSettlementEvaluate = "settlement:evaluate"

// NewSettlementTask wraps a settlement intent in an asynq task. Retries give
// the ledger write at-least-once delivery without coupling it to the status
// transition that produced the intent.
func NewSettlementTask(intent models.SettlementIntent) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(intent)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSettlementEvaluate, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}
