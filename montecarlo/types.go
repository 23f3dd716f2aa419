// Package montecarlo defines options, the Stats result type and sentinel errors.
package montecarlo

import (
	"errors"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// ErrInvalidArgument indicates a non-positive grid size or trial count.
var ErrInvalidArgument = errors.New("montecarlo: invalid argument")

// confidence95 is the two-sided z-score for a 95% normal confidence interval.
const confidence95 = 1.96

// Options configures a Monte Carlo run.
// Use DefaultOptions() and the With* helpers rather than filling it by hand.
//
// Fields:
//
//	Seed   int64              — RNG seed; 0 ⇒ defaultRNGSeed. Ignored when Rand is set.
//	Rand   *rand.Rand         — caller-owned generator; overrides Seed.
//	Logger logrus.FieldLogger — per-trial Debug logging; discards by default.
type Options struct {
	Seed   int64
	Rand   *rand.Rand
	Logger logrus.FieldLogger
}

// Option configures Options.
type Option func(*Options)

// WithSeed sets a deterministic seed for the run.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the generator used for site selection.
// A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithLogger attaches a logger for per-trial Debug records.
// A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with Seed=0 (default seed), no injected
// generator and a logger that discards everything.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Options{
		Seed:   0,
		Rand:   nil,
		Logger: discard,
	}
}

// Stats holds the per-trial fractions of one run and the statistics derived
// from them. It is immutable once NewStats returns.
type Stats struct {
	n         int
	fractions []float64
	mean      float64
	stddev    float64
}
