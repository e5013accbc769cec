// types.go — functional options resolved into an immutable config,
// mirroring the teacher's BuilderOption/builderConfig split.
package builder

import "fmt"

// BuilderOption configures topology generation.
type BuilderOption func(*config)

type config struct {
	seed  int64
	arity int
	idFn  func(i int) string
}

func newConfig(opts ...BuilderOption) config {
	cfg := config{
		seed:  1,
		arity: 2,
		idFn:  func(i int) string { return fmt.Sprintf("v%d", i) },
	}
	for _, apply := range opts {
		apply(&cfg)
	}
	return cfg
}

// WithSeed freezes the random CPT generator so the same (n, seed,
// option set) always produces byte-identical graphs.
func WithSeed(seed int64) BuilderOption {
	return func(c *config) { c.seed = seed }
}

// WithArity sets the number of states every generated variable has.
func WithArity(n int) BuilderOption {
	return func(c *config) { c.arity = n }
}

// WithIDFunc overrides how vertex index maps to a node name.
func WithIDFunc(fn func(i int) string) BuilderOption {
	return func(c *config) { c.idFn = fn }
}
