package filter

import "math"

// The four pattern predicates. Each is a pure read of the history ring:
// they inspect at most the two most recent entries plus the candidate and
// never mutate state. A true result means "reject".

// isRandomEnough applies the staged acceptance test from the package
// documentation against the pre-append history.
//
// Stage order matters only for short-circuit cost; the predicates are
// independent, and any single hit rejects.
func (g *Generator) isRandomEnough(candidate, start, end int64) bool {
	// 1) Too little history to detect any pattern: accept unconditionally.
	if g.hist.len() < minHistoryForChecks {
		return true
	}

	// 2) Would continue an arithmetic run such as 3, 5, 7.
	if g.continuesArithmeticRun(candidate) {
		return false
	}

	// 3) Repeats the previous value, such as 4, 4.
	if g.repeatsLast(candidate) {
		return false
	}

	// 4) Alternates with the value two back, such as 10, 20, 10.
	if g.alternates(candidate) {
		return false
	}

	// 5) Window too cheap to describe relative to the range's entropy.
	if g.descriptionLength(candidate) < entropyFraction*math.Log2(float64(end-start+1)) {
		return false
	}

	return true
}

// continuesArithmeticRun reports whether candidate extends a
// constant-difference progression over the last two history entries.
func (g *Generator) continuesArithmeticRun(candidate int64) bool {
	if g.hist.len() < 2 {
		return false
	}
	prev, prev2 := g.hist.last(1), g.hist.last(2)

	return prev-prev2 == candidate-prev
}

// repeatsLast reports whether candidate equals the most recent entry.
func (g *Generator) repeatsLast(candidate int64) bool {
	return g.hist.len() > 0 && candidate == g.hist.last(1)
}

// alternates reports whether candidate equals the entry two back,
// which would form the pattern [x, y, x] once appended.
func (g *Generator) alternates(candidate int64) bool {
	return g.hist.len() >= 2 && candidate == g.hist.last(2)
}

// descriptionLength scores the window of the last patternWindow history
// entries plus candidate as a crude compressibility proxy: the window is
// run-length encoded and each (value, runCount) pair contributes
// log2(max(1,|value|)) + log2(runCount). Low scores mean the window is
// cheap to describe, hence predictable-looking.
//
// The max(1, |value|) guard keeps log2 off zero and negative magnitudes;
// runCount ≥ 1 keeps its term non-negative.
func (g *Generator) descriptionLength(candidate int64) float64 {
	window := append(g.hist.lastN(patternWindow), candidate)

	var score float64
	runValue := window[0]
	runCount := int64(1)
	for _, v := range window[1:] {
		if v == runValue {
			runCount++

			continue
		}
		score += pairCost(runValue, runCount)
		runValue, runCount = v, 1
	}
	score += pairCost(runValue, runCount)

	return score
}

// pairCost is the score contribution of one run-length pair.
func pairCost(value, runCount int64) float64 {
	magnitude := value
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude < 1 {
		magnitude = 1
	}

	return math.Log2(float64(magnitude)) + math.Log2(float64(runCount))
}
