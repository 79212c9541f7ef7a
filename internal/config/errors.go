package config

import (
	"errors"
)

// Sentinel error kinds for this package. Load and Validate wrap these
// so callers can classify failures with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
