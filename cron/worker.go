package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"brilho/config"
	"brilho/models"
	"brilho/services/lifecycle"
	"brilho/services/tasks"

	"github.com/hibiken/asynq"
)

// InitSettlementWorker runs the settlement queue consumer in background.
// Every intent the lifecycle engine enqueues lands here and is processed
// with asynq's at-least-once retry, so a ledger-store hiccup never reaches
// the status transition that caused it.
func InitSettlementWorker(processor *lifecycle.SettlementProcessor) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSettlementQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSettlementEvaluate, handleSettlementTask(processor))

	go func() {
		log.Println("[SettlementWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SettlementWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SettlementWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSettlementTask(processor *lifecycle.SettlementProcessor) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var intent models.SettlementIntent
		if err := json.Unmarshal(task.Payload(), &intent); err != nil {
			log.Printf("[SettlementWorker] invalid payload: %v", err)
			return err
		}

		return processor.Process(ctx, intent)
	}
}
