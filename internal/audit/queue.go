// Package audit moves audit events off the request path: services emit into a
// Queue and a Worker drains it into the retained trail.
package audit

import (
	"context"

	"verifydesk/pkg/platform/audit"
)

const DefaultQueueSize = 256

// Queue is a buffered hand-off between publishers and a Worker.
type Queue struct {
	events chan audit.Event
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{events: make(chan audit.Event, size)}
}

// Emit enqueues event, blocking while the buffer is full until ctx ends.
func (q *Queue) Emit(ctx context.Context, event audit.Event) error {
	select {
	case q.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Events is the receive side a Worker consumes.
func (q *Queue) Events() <-chan audit.Event {
	return q.events
}
