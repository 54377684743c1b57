package lifecycle

import (
	"context"
	"fmt"

	"brilho/models"
	"brilho/services/tasks"

	"github.com/hibiken/asynq"
)

// InlineSettlementDispatcher evaluates the intent synchronously. Used by
// queue-less deployments and tests.
type InlineSettlementDispatcher struct {
	Processor *SettlementProcessor
}

func (d *InlineSettlementDispatcher) Dispatch(ctx context.Context, intent models.SettlementIntent) error {
	return d.Processor.Process(ctx, intent)
}

// QueueSettlementDispatcher enqueues the intent for the settlement worker.
type QueueSettlementDispatcher struct {
	Client *asynq.Client
}

func (d *QueueSettlementDispatcher) Dispatch(ctx context.Context, intent models.SettlementIntent) error {
	task, opts, err := tasks.NewSettlementTask(intent)
	if err != nil {
		return fmt.Errorf("build settlement task: %w", err)
	}
	if _, err := d.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue settlement task: %w", err)
	}
	return nil
}
