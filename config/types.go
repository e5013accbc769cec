// types.go — Options struct, functional Option setters, Default, Load.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds the tunables a belief-propagation run needs.
type Options struct {
	// Epsilon is the L1 message-delta convergence threshold for Loopy.
	Epsilon float64 `yaml:"epsilon"`

	// MaxIterations bounds Loopy's synchronous rounds.
	MaxIterations int `yaml:"max_iterations"`

	// Strict selects StrictCombine (no zero-factor skipping).
	Strict bool `yaml:"strict"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Option configures Options via functional arguments, mirroring the
// teacher's bfs.Option/dijkstra.Option pattern.
type Option func(*Options)

// WithEpsilon overrides the convergence threshold.
func WithEpsilon(epsilon float64) Option {
	return func(o *Options) { o.Epsilon = epsilon }
}

// WithMaxIterations overrides the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithStrict toggles strict (no zero-skip) combine.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) Option {
	return func(o *Options) { o.LogLevel = level }
}

// Default returns the spec's stated defaults: ε=1e-6, 1000 max
// iterations, non-strict combine, info-level logging.
func Default(opts ...Option) Options {
	o := Options{
		Epsilon:       1e-6,
		MaxIterations: 1000,
		Strict:        false,
		LogLevel:      "info",
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Load reads a YAML file at path over Default's values — a field
// absent from the file keeps its default. A missing file is not an
// error; Load treats it the same as an empty one so a config file is
// optional.
func Load(path string, opts ...Option) (Options, error) {
	o := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Options{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	for _, apply := range opts {
		apply(&o)
	}
	return o, o.validate()
}

func (o Options) validate() error {
	if o.Epsilon <= 0 {
		return ErrInvalidEpsilon
	}
	if o.MaxIterations <= 0 {
		return ErrInvalidMaxIterations
	}
	switch o.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
