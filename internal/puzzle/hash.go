package puzzle

// HashString hashes a seed string to an unsigned 32-bit integer using a
// polynomial rolling hash (multiplier 31). The same string always produces
// the same value on every platform, which is what keeps daily draws stable
// across server restarts and deploys. Not suitable for anything
// security-related.
func HashString(s string) uint32 {
	var h uint32
	for _, c := range s {
		h = h*31 + uint32(c)
	}
	return h
}

// Rand is a small linear congruential generator. Each instance produces an
// independent, repeatable stream of floats for a given seed. Use
// HashString(dayKey) as the seed to get a stream that is stable for a whole
// calendar day.
type Rand struct {
	state uint32
}

// NewRand creates a generator seeded with the given value.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state) / (1 << 32)
}
