// Package auditlog persists audit events to an append-only,
// newline-delimited JSON log. The log is the permanent system of record
// for every disposition decision; shelfwatch never truncates it.
package auditlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/okian/shelfwatch/internal/domain/model"
)

const logFileMode = 0o644

// Writer appends events to a single log file. One serialized event per
// line, input order preserved. Writes are unbuffered per event, so an
// interruption mid-batch leaves every previously written line intact;
// partial-failure semantics are "the prefix survives", not
// all-or-nothing.
//
// A sibling .lock file enforces the single-writer discipline. A second
// concurrent writer fails with ErrLocked instead of interleaving lines.
type Writer struct {
	path string
	lock *flock.Flock
}

// New creates a Writer for the given log path.
func New(path string, opts ...Option) *Writer {
	w := &Writer{
		path: path,
		lock: flock.New(path + ".lock"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path reports the log file location.
func (w *Writer) Path() string {
	return w.path
}

// Append writes events to the log in order. Appending an empty batch is
// a no-op and does not touch the file.
func (w *Writer) Append(ctx context.Context, events []model.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	locked, err := w.lock.TryLock()
	if err != nil {
		return fmt.Errorf("%w: acquire lock: %v", ErrLogWrite, err)
	}
	if !locked {
		return ErrLocked
	}
	defer func() {
		_ = w.lock.Unlock()
	}()

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create log dir: %v", ErrLogWrite, err)
		}
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return fmt.Errorf("%w: open log: %v", ErrLogWrite, err)
	}
	defer func() {
		_ = f.Close()
	}()

	for _, event := range events {
		line, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("%w: marshal event: %v", ErrLogWrite, err)
		}
		// One Write call per line keeps a crashed batch from leaving a
		// torn record behind.
		if _, err := f.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("%w: append event: %v", ErrLogWrite, err)
		}
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: sync log: %v", ErrLogWrite, err)
	}
	return nil
}
