// Package source provides the uniform-random collaborators consumed by
// the filter package: a one-method Source interface and two concrete
// implementations.
//
// What:
//
//   - Source: draws an integer uniformly from an inclusive range.
//   - LCG: deterministic, seedable linear congruential generator using
//     the Knuth MMIX parameters; the reference source for every
//     reproducible fixture in this module.
//   - System: math/rand seeded from the wall clock; the default when no
//     seed is supplied.
//
// Why:
//
//   - The perceptual filter is a pure post-processor; it neither owns nor
//     cares how uniform integers are produced. Keeping the source behind
//     an interface lets tests pin exact sequences while production users
//     keep nondeterminism.
//
// Determinism contract:
//
//   - Two LCG values built from the same seed emit identical draw
//     sequences for identical (start, end) request sequences. System
//     makes no such promise.
//
// Caller contract:
//
//   - Uniform(start, end) requires start ≤ end. Range validation is the
//     caller's job (filter.Next performs it); sources do not re-check.
//
// See filter for the acceptance loop built on top of these sources.
package source
