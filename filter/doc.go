// Package filter implements the pattern-filtered integer generator: a
// rejection-sampling loop that draws from a uniform source and discards
// candidates which would create a short, human-noticeable regularity
// relative to a bounded history of previously accepted values.
//
// Overview:
//
//   - Generator owns one 100-entry FIFO history ring and one
//     source.Source; the two are never shared between instances.
//   - Next(start, end) draws candidates until one passes the acceptance
//     test, records it in the history, and returns it.
//   - The acceptance test is unconditional while history holds fewer than
//     3 values; afterwards a candidate is rejected if it would
//     1. continue an arithmetic run   (history −1/−2 difference repeats),
//     2. repeat the previous value,
//     3. alternate with the value two back ([x, y, x]), or
//     4. form a window that is "too cheap to describe": the last two
//     values plus the candidate are run-length encoded and scored as
//     Σ log2(max(1,|value|)) + log2(runCount); scores below
//     0.8·log2(end−start+1) are rejected.
//
// What this is NOT:
//
//   - Not cryptographic. Not statistically rigorous. The filter trades a
//     little uniformity for the *appearance* of randomness over short
//     windows; that is its entire purpose.
//
// Termination:
//
//   - Pure rejection sampling can livelock: once history holds three
//     equal values, a single-value range (start == end) has its only
//     candidate rejected by the repeat check forever. The loop therefore
//     carries an attempt cap (DefaultMaxAttempts, tunable via
//     WithMaxAttempts); when the cap is exhausted the final draw is
//     accepted and recorded. This is a deliberate deviation from pure
//     "draw until the predicate holds" — for any range with at least two
//     values the cap is effectively unreachable, so it changes observable
//     behavior only where the pure loop would hang.
//
// Determinism:
//
//   - Construct with WithSeed (or WithSource over a seeded source.LCG)
//     and the accepted sequence is identical across runs for identical
//     request sequences. Rejected draws consume source output, so the
//     source's draw order is part of the contract.
//
// Errors (sentinel):
//
//   - ErrInvalidRange — Next called with start > end. The only error the
//     package returns; rejection is control flow, not an error.
//
// Complexity:
//
//   - Next: O(attempts) time, O(1) amortized per accepted value;
//     the acceptance test reads at most the three most recent history
//     entries. Memory: O(HistoryCapacity) per generator, fixed.
//
// Thread safety:
//
//   - None. One generator serves one logical caller; independent streams
//     need independent generators (and sources).
//
// Example usage:
//
//	g := filter.New(filter.WithSeed(576))
//	n, err := g.Next(1, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(n) // 20
package filter
