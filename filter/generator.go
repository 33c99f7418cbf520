// Package filter implements the pattern-filtered generator: rejection
// sampling over a uniform source with a bounded history of accepted
// values driving the acceptance test.
package filter

import (
	"github.com/katalvlaran/humanrand/source"
)

// Generator draws integers from a uniform source and filters out
// candidates that would create a short, human-noticeable pattern.
//
// Each Generator owns its source and its history ring exclusively; see
// the package documentation for the acceptance rules, the determinism
// contract and the termination guarantee. Not safe for concurrent use.
type Generator struct {
	src         source.Source // Candidate supplier; never nil after New.
	hist        *ring         // Accepted values, oldest-first, capacity HistoryCapacity.
	maxAttempts int           // Rejection-loop cap per Next call.
}

// New constructs a Generator from the given functional options.
//
// With no options the generator draws from a fresh wall-clock-seeded
// source.System and is therefore nondeterministic; pass WithSeed (or
// WithSource with a seeded source) for reproducible sequences.
func New(opts ...Option) *Generator {
	// 1) Build and apply Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Substitute the nondeterministic default source when none was set.
	if cfg.Src == nil {
		cfg.Src = source.NewSystem()
	}

	// 3) Assemble the generator with its own empty history ring.
	return &Generator{
		src:         cfg.Src,
		hist:        newRing(HistoryCapacity),
		maxAttempts: cfg.MaxAttempts,
	}
}

// Next returns an integer from [start, end] that passes the acceptance
// test, recording it in the history. It returns ErrInvalidRange when
// start > end; rejection of individual draws is internal control flow,
// never an error.
//
// Each rejected draw consumes one value from the underlying source, so
// the source's full draw sequence — not just the accepted values — is
// part of the determinism contract.
func (g *Generator) Next(start, end int64) (int64, error) {
	// 1) Validate the range before touching the source.
	if start > end {
		return 0, ErrInvalidRange
	}

	// 2) Rejection loop: draw, test, accept or retry.
	var candidate int64
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate = g.src.Uniform(start, end)
		if g.isRandomEnough(candidate, start, end) {
			g.hist.push(candidate)

			return candidate, nil
		}
	}

	// 3) Attempt cap exhausted. Accept the final draw so degenerate
	//    ranges (start == end with a saturated history) terminate instead
	//    of livelocking on the repeat check.
	g.hist.push(candidate)

	return candidate, nil
}

// History returns a copy of the current history, oldest-first. The
// length never exceeds HistoryCapacity; once it reaches capacity it
// stays there, holding exactly the most recent accepted values in order.
func (g *Generator) History() []int64 {
	return g.hist.snapshot()
}
