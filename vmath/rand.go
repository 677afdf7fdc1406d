package vmath

// FastRand is a xorshift64 generator
// One instance is owned by the simulation and handed to every consumer of randomness,
// so a run is reproducible from its seed
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; a zero seed is remapped since xorshift has a zero fixed point
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0,n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
