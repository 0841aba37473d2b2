package uniqrand

import "errors"

var (
	// ErrNegativeCount indicates a constructor call with count < 0.
	ErrNegativeCount = errors.New("uniqrand: count must be non-negative")
	// ErrExhausted indicates a draw was requested after all count values
	// were already emitted.
	ErrExhausted = errors.New("uniqrand: no values left")
	// ErrConcurrentModification indicates a checked iterator detected a draw
	// through another access path since its last step.
	ErrConcurrentModification = errors.New("uniqrand: generator advanced outside the iterator")
)

// None is the sentinel returned by NextIfHas on an exhausted generator.
// Valid draws are always ≥ 0, so None is never a domain value.
const None = -1

// Option configures a Generator at construction.
type Option func(*config)

// config collects constructor options before the Generator is built.
type config struct {
	seed    int64
	seedSet bool
}

// WithSeed pins the generator's seed. Two generators built with equal
// count and equal seed produce identical sequences, call for call.
// Without this option a seed is drawn from ambient entropy once,
// at construction.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}
