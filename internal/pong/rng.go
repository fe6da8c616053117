package pong

// SimpleRNG is a small deterministic PCG-style generator. It is a plain value
// so it can live inside MatchState and be copied with it.
type SimpleRNG struct {
	State uint64
}

// NewRNG creates a generator from a seed.
func NewRNG(seed int64) SimpleRNG {
	r := SimpleRNG{State: uint64(seed)} //nolint:gosec // seed bits are reinterpreted, not range-checked
	r.Next()
	return r
}

// Next advances the generator and returns the new state.
func (r *SimpleRNG) Next() uint64 {
	r.State = r.State*6364136223846793005 + 1442695040888963407
	return r.State
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //nolint:gosec // n is positive
}

// Float64 returns a value in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
