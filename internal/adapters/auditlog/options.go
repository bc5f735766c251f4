package auditlog

import "github.com/gofrs/flock"

// Option applies a configuration option to the Writer.
type Option func(*Writer)

// WithLockPath overrides the lock file location. The default is the log
// path with a .lock suffix.
func WithLockPath(path string) Option {
	return func(w *Writer) {
		if path != "" {
			w.lock = flock.New(path)
		}
	}
}
