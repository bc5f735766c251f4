package policy

import "errors"

// Sentinel kinds for threshold policy errors.
var (
	ErrInvalidThreshold = errors.New("threshold outside [0,1]")
	ErrMalformedScene   = errors.New("malformed scene")
)
