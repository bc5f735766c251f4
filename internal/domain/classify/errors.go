package classify

import "errors"

// Sentinel kinds for classifier errors.
var (
	ErrMalformedLabel = errors.New("malformed label")
)
