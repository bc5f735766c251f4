package policy

import "time"

// Option applies a configuration option to the Policy.
type Option func(*Policy)

// WithClock overrides the timestamp source used for audit events.
func WithClock(now func() time.Time) Option {
	return func(p *Policy) {
		if now != nil {
			p.now = now
		}
	}
}
