// Package source defines the uniform-random source abstraction used by
// the filter package.
package source

// Source draws integers uniformly from an inclusive range.
//
// Implementations must return a value v with start ≤ v ≤ end, each value
// in the range equally likely (up to the quality of the underlying
// stream). Callers guarantee start ≤ end; behavior for start > end is
// undefined and implementations are free not to check.
type Source interface {
	// Uniform returns the next integer drawn uniformly from [start, end].
	Uniform(start, end int64) int64
}
