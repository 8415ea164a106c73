package verify

import (
	"context"
	"sync"
)

// Manager enforces the at-most-one-active-attempt invariant for a checkout
// session. Starting a new attempt synchronously cancels the previous one
// before the new loop issues its first check, so a late-arriving result from
// an abandoned attempt can never finalize an order.
type Manager struct {
	mu      sync.Mutex
	current *Attempt
}

// NewManager returns an empty attempt manager.
func NewManager() *Manager {
	return &Manager{}
}

// Start cancels any active attempt and begins a new one.
func (m *Manager) Start(ctx context.Context, opts Options, check CheckFunc) *Attempt {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Cancel()
	}
	m.current = Start(ctx, opts, check)
	return m.current
}

// Cancel stops the active attempt, if any. Idempotent.
func (m *Manager) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Cancel()
	}
}

// Current returns the most recently started attempt, or nil.
func (m *Manager) Current() *Attempt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
