package artifacts

import "errors"

// Sentinel kinds for artifact store errors.
var (
	ErrWrite = errors.New("artifact write failed")
	ErrRead  = errors.New("artifact read failed")
)
