package montecarlo

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/sirupsen/logrus"
)

// NewStats runs trials independent experiments on an n×n grid and returns
// their summary statistics.
//
// Steps:
//  1. Validate n with percolation.ValidateSize and trials > 0.
//  2. Resolve options: injected Rand, else rngFromSeed(Seed).
//  3. For each trial call RunTrial with the shared generator and log the result.
//  4. Compute mean and sample standard deviation over the fractions.
//
// Returns ErrInvalidArgument for a non-positive or oversized n, or a
// non-positive trials.
func NewStats(n, trials int, opts ...Option) (*Stats, error) {
	if err := percolation.ValidateSize(n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trial count %d must be positive", ErrInvalidArgument, trials)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}
	log := o.Logger.WithFields(logrus.Fields{"n": n, "trials": trials})

	fractions := make([]float64, trials)
	for i := 0; i < trials; i++ {
		opened, err := runTrial(n, rng)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: trial %d: %w", i, err)
		}
		fractions[i] = float64(opened) / float64(n*n)
		log.WithFields(logrus.Fields{
			"trial":    i,
			"opened":   opened,
			"fraction": fractions[i],
		}).Debug("trial percolated")
	}

	s := &Stats{
		n:         n,
		fractions: fractions,
		mean:      Mean(fractions),
		stddev:    Stddev(fractions),
	}
	log.WithFields(logrus.Fields{
		"mean":   s.mean,
		"stddev": s.stddev,
	}).Info("simulation complete")

	return s, nil
}

// RunTrial opens uniformly random sites of a fresh n×n grid until it
// percolates and returns the fraction of sites opened.
// A nil rng uses the default deterministic stream (seed 0 policy).
// Returns ErrInvalidArgument if n fails percolation.ValidateSize.
func RunTrial(n int, rng *rand.Rand) (float64, error) {
	if err := percolation.ValidateSize(n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	opened, err := runTrial(n, rng)
	if err != nil {
		return 0, err
	}

	return float64(opened) / float64(n*n), nil
}

// runTrial returns the number of open sites at the moment the grid first
// percolates. Sampling is with replacement; already-open picks are no-ops.
func runTrial(n int, rng *rand.Rand) (int, error) {
	p, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	for !p.Percolates() {
		row, col := uniformSite(rng, n)
		if err := p.Open(row, col); err != nil {
			return 0, err
		}
	}

	return p.NumberOfOpenSites(), nil
}

// Size returns the grid side n.
func (s *Stats) Size() int {
	return s.n
}

// Trials returns the number of trials run.
func (s *Stats) Trials() int {
	return len(s.fractions)
}

// Fractions returns a copy of the per-trial open fractions in trial order.
func (s *Stats) Fractions() []float64 {
	out := make([]float64, len(s.fractions))
	copy(out, s.fractions)

	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	return s.mean
}

// Stddev returns the sample standard deviation of the percolation threshold.
func (s *Stats) Stddev() float64 {
	return s.stddev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	lo, _ := ConfidenceInterval(s.mean, s.stddev, len(s.fractions))

	return lo
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	_, hi := ConfidenceInterval(s.mean, s.stddev, len(s.fractions))

	return hi
}
