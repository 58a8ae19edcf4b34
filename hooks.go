package paylens

import (
	"sync"

	"github.com/paylens/paylens/pkg/reconcile"
)

// ReclassifiedHook is called after every classification pass with the
// pass's summary, letting a UI shell refresh outlier counts without
// polling the session.
type ReclassifiedHook func(result reconcile.Result)

// hooks manages event callbacks for session changes
type hooks struct {
	mu           sync.RWMutex
	reclassified []ReclassifiedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// onReclassified registers a callback for classification passes
func (h *hooks) onReclassified(fn ReclassifiedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reclassified = append(h.reclassified, fn)
}

// fireReclassified invokes every registered callback in order
func (h *hooks) fireReclassified(result reconcile.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.reclassified {
		fn(result)
	}
}
