package config

import "errors"

// Sentinel kinds callers match with errors.Is. Load failures cover the
// SHELFWATCH_CONFIG file and env layering; validation failures mean the
// merged values cannot run the pipeline.
var (
	ErrLoadConfig    = errors.New("load config failed")
	ErrInvalidConfig = errors.New("invalid config")
)
