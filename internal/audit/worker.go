package audit

import (
	"context"
	"log/slog"

	"verifydesk/pkg/platform/audit"
)

// Sink persists audit events.
type Sink interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Worker consumes audit events from a channel and persists them.
type Worker struct {
	sink   Sink
	inbox  <-chan audit.Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run persists events until ctx ends, then flushes whatever is still
// buffered. Sink failures are logged and do not stop the worker.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return nil
		case event := <-w.inbox:
			w.persist(ctx, event)
		}
	}
}

func (w *Worker) drain() {
	// ctx is already done here; the flush gets a fresh one.
	ctx := context.Background()
	for {
		select {
		case event := <-w.inbox:
			w.persist(ctx, event)
		default:
			return
		}
	}
}

func (w *Worker) persist(ctx context.Context, event audit.Event) {
	if err := w.sink.Emit(ctx, event); err != nil && w.logger != nil {
		w.logger.ErrorContext(ctx, "failed to persist audit event",
			"action", event.Action,
			"subject", event.Subject,
			"error", err,
		)
	}
}
