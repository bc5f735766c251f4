package auditlog

import "errors"

// Sentinel kinds for audit log errors.
var (
	ErrLogWrite = errors.New("audit log write failed")
	ErrLocked   = errors.New("audit log held by another writer")
)
