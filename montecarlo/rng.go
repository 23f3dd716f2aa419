package montecarlo

import "math/rand/v2"

// defaultRNGSeed is used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic PCG-backed *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
// The second PCG word is a SplitMix64 mix of the seed so nearby seeds do not
// produce correlated streams.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewPCG(uint64(s), mixSeed(uint64(s))))
}

// mixSeed is the SplitMix64 finalizer.
func mixSeed(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// uniformSite returns a uniformly random 1-based (row, col) in [1, n]².
// n must be positive.
func uniformSite(rng *rand.Rand, n int) (row, col int) {
	return rng.IntN(n) + 1, rng.IntN(n) + 1
}
