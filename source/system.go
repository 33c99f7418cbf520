package source

import (
	"math/rand"
	"time"
)

// System draws from math/rand seeded with the wall clock at construction.
// It is the nondeterministic default source; use LCG when runs must be
// reproducible.
//
// System is not safe for concurrent use; give each goroutine its own value.
type System struct {
	r *rand.Rand
}

// NewSystem returns a System seeded from time.Now().UnixNano().
func NewSystem() *System {
	return &System{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Uniform returns the next integer drawn from [start, end].
// Caller guarantees start ≤ end.
func (s *System) Uniform(start, end int64) int64 {
	// Same wrap handling as LCG: span == 0 means the full int64 domain.
	span := uint64(end-start) + 1
	if span == 0 {
		return int64(s.r.Uint64())
	}

	return start + int64(s.r.Uint64()%span)
}
