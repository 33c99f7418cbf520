package source

// Knuth MMIX linear congruential parameters; modulus is 2^64 via the
// natural uint64 overflow.
const (
	mmixMultiplier uint64 = 6364136223846793005
	mmixIncrement  uint64 = 1442695040888963407
)

// LCG is a deterministic, seedable linear congruential generator.
//
// State advances as state = state*mmixMultiplier + mmixIncrement (mod 2^64).
// Range mapping is start + state%span, span = end-start+1. The modulo
// introduces a bias of at most span/2^64 — negligible for perceptual
// filtering and irrelevant to the determinism contract, which is the
// reason this source exists.
//
// LCG is not safe for concurrent use; give each goroutine its own value.
type LCG struct {
	state uint64
}

// NewLCG returns an LCG seeded with the given value. Equal seeds yield
// equal draw sequences.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// next advances the recurrence and returns the new raw state.
func (l *LCG) next() uint64 {
	l.state = l.state*mmixMultiplier + mmixIncrement

	return l.state
}

// Uniform returns the next integer drawn from [start, end].
// Caller guarantees start ≤ end.
func (l *LCG) Uniform(start, end int64) int64 {
	// span wraps to 0 only when [start, end] covers the whole int64
	// domain; the raw state then already is a uniform draw.
	span := uint64(end-start) + 1
	if span == 0 {
		return int64(l.next())
	}

	return start + int64(l.next()%span)
}
