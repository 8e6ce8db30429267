// Package notify implements the Notifier as a bounded in-memory queue of
// transient notices, drained by the delivery layer on each page response.
package notify

import (
	"sync"
	"time"

	"dashboard/internal/domain/service"
)

// maxPending caps the queue; older notices are dropped first. An operator
// who never drains should not grow the process without bound.
const maxPending = 64

type notifier struct {
	mu      sync.Mutex
	pending []service.Notice
}

// New returns an empty Notifier.
func New() service.Notifier {
	return &notifier{}
}

func (n *notifier) Notify(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = append(n.pending, service.Notice{
		Level:   level,
		Message: message,
		Time:    time.Now(),
	})
	if len(n.pending) > maxPending {
		n.pending = n.pending[len(n.pending)-maxPending:]
	}
}

func (n *notifier) Drain() []service.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.pending
	n.pending = nil

	return out
}
