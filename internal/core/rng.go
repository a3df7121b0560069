package core

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so a seed fully determines a run.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a random float64 in [lo, hi]. Returns lo when hi <= lo.
func (r *SimpleRNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// State exposes the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
