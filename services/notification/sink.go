package notification

import (
	"context"

	"brilho/models"

	"go.uber.org/zap"
)

// LogEventSink writes lifecycle events to the application log. It stands in
// for the real delivery channel (push, e-mail), which lives outside this
// engine.
type LogEventSink struct {
	Logger *zap.Logger
}

func NewLogEventSink(logger *zap.Logger) *LogEventSink {
	return &LogEventSink{Logger: logger}
}

func (s *LogEventSink) Publish(_ context.Context, event models.LifecycleEvent) error {
	s.Logger.Info("lifecycle event",
		zap.String("type", event.Type),
		zap.String("serviceId", event.ServiceID),
		zap.String("title", event.Title),
		zap.String("body", event.Body))
	return nil
}
