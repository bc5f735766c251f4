package reconcile

import "time"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithClock overrides the timestamp source used for audit events.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// RequireInventory makes Reconcile fail with ErrEmptyInventory when the
// inventory is empty. Without it an empty inventory is legal: every
// accepted prediction legitimately becomes MISSING_FROM_DB.
func RequireInventory() Option {
	return func(e *Engine) {
		e.requireInventory = true
	}
}
