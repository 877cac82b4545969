package solver

import (
	"fmt"

	"github.com/arloliu/hamsim/code"
	"github.com/arloliu/hamsim/internal/options"
	"github.com/arloliu/hamsim/rng"
)

// Error kinds of the solver surface. They are shared with the code package
// so callers match one taxonomy with errors.Is regardless of which layer
// rejected the call.
var (
	ErrInvalidInput     = code.ErrInvalidInput
	ErrInvalidParameter = code.ErrInvalidParameter
)

// Default configuration values used when an option is not supplied.
const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
	DefaultErrorRate     = 0.1
	DefaultDampingFactor = 0.5
)

// Config holds the parameters of a single solve invocation.
//
// The zero value is not usable; build configurations through Solve's
// functional options, which validate every field before any iteration runs.
type Config struct {
	// MaxIterations bounds the encode-corrupt-decode loop. Must be > 0.
	MaxIterations int

	// Tolerance is the convergence threshold compared against the
	// fractional Hamming distance (changed bits / 4) between successive
	// iterates. Must lie strictly inside (0, 1).
	Tolerance float64

	// ErrorRate is the per-bit corruption probability applied to each
	// codeword. Must lie in [0, 1].
	ErrorRate float64

	// DampingFactor is the probability of reverting each changed bit when
	// AdaptiveStep is enabled. Must lie in [0, 1].
	DampingFactor float64

	// AdaptiveStep enables probabilistic damping of proposed transitions.
	AdaptiveStep bool

	// Source supplies all randomness of the solve (noise and damping).
	// Defaults to an unseeded source; inject a seeded one for
	// reproducible runs.
	Source rng.Source
}

func defaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		ErrorRate:     DefaultErrorRate,
		DampingFactor: DefaultDampingFactor,
	}
}

// validate rejects out-of-range configuration before any work is performed.
func (c *Config) validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations %d, must be > 0", ErrInvalidParameter, c.MaxIterations)
	}
	if !(c.Tolerance > 0 && c.Tolerance < 1) {
		return fmt.Errorf("%w: tolerance %v outside (0, 1)", ErrInvalidParameter, c.Tolerance)
	}
	if !(c.ErrorRate >= 0 && c.ErrorRate <= 1) {
		return fmt.Errorf("%w: error rate %v outside [0, 1]", ErrInvalidParameter, c.ErrorRate)
	}
	if !(c.DampingFactor >= 0 && c.DampingFactor <= 1) {
		return fmt.Errorf("%w: damping factor %v outside [0, 1]", ErrInvalidParameter, c.DampingFactor)
	}

	return nil
}

// Option represents a functional option for configuring a solve invocation.
type Option = options.Option[*Config]

// WithMaxIterations sets the iteration budget of the solve.
func WithMaxIterations(n int) Option {
	return options.NoError(func(c *Config) {
		c.MaxIterations = n
	})
}

// WithTolerance sets the convergence threshold on the fractional Hamming
// distance between successive iterates.
func WithTolerance(tol float64) Option {
	return options.NoError(func(c *Config) {
		c.Tolerance = tol
	})
}

// WithErrorRate sets the per-bit corruption probability.
func WithErrorRate(rate float64) Option {
	return options.NoError(func(c *Config) {
		c.ErrorRate = rate
	})
}

// WithDampingFactor sets the per-bit revert probability used when adaptive
// stepping is enabled.
func WithDampingFactor(factor float64) Option {
	return options.NoError(func(c *Config) {
		c.DampingFactor = factor
	})
}

// WithAdaptiveStep enables or disables probabilistic damping of proposed
// transitions.
func WithAdaptiveStep(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.AdaptiveStep = enabled
	})
}

// WithSource injects the random source used for noise injection and damping
// draws. Supplying a seeded source makes the solve reproducible.
func WithSource(src rng.Source) Option {
	return options.New(func(c *Config) error {
		if src == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidParameter)
		}
		c.Source = src

		return nil
	})
}
