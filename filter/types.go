// Package filter defines the configuration options, sentinel errors and
// tuning constants for the pattern-filtered generator.
package filter

import (
	"errors"

	"github.com/katalvlaran/humanrand/source"
)

// Sentinel errors returned by the filter package.
var (
	// ErrInvalidRange indicates Next was called with start > end.
	ErrInvalidRange = errors.New("filter: start must not exceed end")

	// ErrNilSource indicates WithSource was given a nil source.
	ErrNilSource = errors.New("filter: source must be non-nil")

	// ErrBadMaxAttempts indicates WithMaxAttempts was given a
	// non-positive cap.
	ErrBadMaxAttempts = errors.New("filter: MaxAttempts must be positive")
)

const (
	// HistoryCapacity is the fixed size of the per-generator history
	// ring. Appending beyond it evicts the oldest entry (FIFO).
	HistoryCapacity = 100

	// DefaultMaxAttempts bounds the rejection loop of a single Next
	// call. When exhausted the final draw is accepted regardless of the
	// pattern checks, guaranteeing termination for degenerate ranges.
	DefaultMaxAttempts = 1000

	// minHistoryForChecks is the history length below which every
	// candidate is accepted unconditionally: with fewer than three prior
	// values no window is long enough to detect any of the patterns.
	minHistoryForChecks = 3

	// patternWindow is how many recent history entries join the candidate
	// in the description-length window.
	patternWindow = 2

	// entropyFraction scales the range's information content,
	// log2(end-start+1), into the minimum acceptable description-length
	// score. Windows scoring below the scaled budget are rejected as too
	// cheap to describe.
	entropyFraction = 0.8
)

// Options configures a Generator.
//
// Src         – uniform source to draw candidates from; nil selects a
// fresh wall-clock-seeded source.System.
// MaxAttempts – rejection-loop cap per Next call. Must be positive.
type Options struct {
	Src         source.Source // Candidate supplier; nil → source.NewSystem()
	MaxAttempts int           // Draws per Next before the fallback accept
}

// Option represents a functional option for configuring a Generator.
type Option func(*Options)

// WithSource binds the generator to the given uniform source.
// Passing nil panics with ErrNilSource; a generator without a source
// cannot draw.
func WithSource(src source.Source) Option {
	return func(o *Options) {
		if src == nil {
			// Panic to signal invalid configuration early.
			panic(ErrNilSource.Error())
		}
		o.Src = src
	}
}

// WithSeed binds the generator to a deterministic source.LCG seeded with
// the given value. Equal seeds and equal request sequences yield equal
// accepted sequences.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Src = source.NewLCG(seed)
	}
}

// WithMaxAttempts overrides the rejection-loop cap.
// Must pass a positive value; zero or negative cause ErrBadMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxAttempts.Error())
		}
		o.MaxAttempts = n
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for further functional-option
// overrides.
//
// Defaults:
//   - Src:         nil (New substitutes a wall-clock-seeded source.System).
//   - MaxAttempts: DefaultMaxAttempts.
func DefaultOptions() Options {
	return Options{
		Src:         nil,
		MaxAttempts: DefaultMaxAttempts,
	}
}
