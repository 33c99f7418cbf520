package filter

// ring is a fixed-capacity FIFO of accepted values, oldest-first.
// Once full, pushing overwrites the oldest entry. head indexes the
// oldest entry while full and is 0 before that.
type ring struct {
	buf  []int64
	head int
	max  int
}

// newRing returns an empty ring with the given fixed capacity.
func newRing(capacity int) *ring {
	return &ring{
		buf: make([]int64, 0, capacity),
		max: capacity,
	}
}

// len reports how many values the ring currently holds.
func (r *ring) len() int {
	return len(r.buf)
}

// push appends v, evicting the oldest value when the ring is full.
func (r *ring) push(v int64) {
	if len(r.buf) < r.max {
		r.buf = append(r.buf, v)

		return
	}
	r.buf[r.head] = v
	r.head = (r.head + 1) % r.max
}

// last returns the k-th most recent value; last(1) is the newest.
// Caller guarantees 1 ≤ k ≤ len().
func (r *ring) last(k int) int64 {
	n := len(r.buf)

	return r.buf[(r.head+n-k)%n]
}

// lastN returns up to the n most recent values, oldest-first.
func (r *ring) lastN(n int) []int64 {
	if n > len(r.buf) {
		n = len(r.buf)
	}
	out := make([]int64, 0, n)
	for k := n; k >= 1; k-- {
		out = append(out, r.last(k))
	}

	return out
}

// snapshot returns a copy of the whole ring, oldest-first.
func (r *ring) snapshot() []int64 {
	return r.lastN(len(r.buf))
}
