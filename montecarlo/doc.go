// Package montecarlo estimates the percolation threshold of an n×n grid by
// repeated independent trials.
//
// What:
//
//   - Each trial builds a fresh percolation.Percolation, opens uniformly random
//     sites until it percolates and records the opened fraction k/n².
//   - Stats aggregates the fractions: sample mean, sample standard deviation
//     (N-1 denominator) and the 95% confidence interval
//     mean ± 1.96·stddev/√trials.
//
// Determinism:
//
//   - All randomness flows through one *rand.Rand (math/rand/v2, PCG source).
//   - WithSeed(s) makes a run reproducible; seed 0 maps to a fixed default seed.
//   - WithRand injects a caller-owned generator.
//
// Logging:
//
//   - WithLogger attaches a logrus.FieldLogger; each trial is logged at Debug
//     with fields trial, opened and fraction. The default logger discards output.
//
// Complexity:
//
//   - NewStats: O(T · n² · α(n²)) time, O(n²) memory per live trial + O(T) fractions.
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0 or trials <= 0.
//
// Concurrency:
//
//   - Trials run sequentially. A *rand.Rand is not goroutine-safe; do not share
//     one passed via WithRand across concurrent NewStats calls.
package montecarlo
