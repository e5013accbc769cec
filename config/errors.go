// errors.go — sentinel errors for the config package.
package config

import "errors"

var (
	// ErrInvalidEpsilon is returned when Epsilon is <= 0.
	ErrInvalidEpsilon = errors.New("config: epsilon must be positive")

	// ErrInvalidMaxIterations is returned when MaxIterations is <= 0.
	ErrInvalidMaxIterations = errors.New("config: max_iterations must be positive")

	// ErrInvalidLogLevel is returned when LogLevel isn't one of the
	// slog level names.
	ErrInvalidLogLevel = errors.New("config: log_level must be one of debug, info, warn, error")
)
