package inventory

import "errors"

// Sentinel kinds for inventory source errors.
var (
	ErrSourceUnavailable = errors.New("inventory source unavailable")
	ErrMalformedRecord   = errors.New("malformed inventory record")
)
