package service

import (
	"sync"

	"coach-planner-backend/internal/metrics"
)

// Notifier broadcasts payload-less "state changed" events to subscribers
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func()
}

// NewNotifier creates a notifier with no subscribers
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.mu.Unlock()
	metrics.EventSubscribers.Inc()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			metrics.EventSubscribers.Dec()
		})
	}
}

// Publish calls every subscriber synchronously on the caller's goroutine
func (n *Notifier) Publish() {
	n.mu.RLock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of active subscribers
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
