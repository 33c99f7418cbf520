// Package humanrand generates bounded integers that *look* random to a
// human observer — a thin perceptual filter on top of a uniform source.
//
// 🚀 What is humanrand?
//
//	A small, deterministic-when-seeded library that rejection-samples a
//	uniform integer stream until the next value avoids the short
//	regularities people notice instantly:
//		• arithmetic runs       (3, 5, 7, …)
//		• immediate repeats     (4, 4)
//		• alternations          (10, 20, 10)
//		• "too cheap to describe" windows (run-length entropy proxy)
//
// ✨ Why choose humanrand?
//
//   - Honest scope – a perceptual post-filter, NOT a cryptographic or
//     statistically rigorous randomness source
//   - Reproducible – seed the built-in LCG source and every conforming
//     run emits the identical sequence
//   - Bounded state – a fixed 100-entry history ring per generator,
//     nothing shared, nothing global
//   - Pluggable – bring your own uniform source via a one-method interface
//
// Everything is organized under two subpackages plus a demo binary:
//
//	source/ — the uniform-random collaborator: Source interface, seedable
//	          LCG (Knuth MMIX), wall-clock-seeded System
//	filter/ — the generator itself: history ring, the four pattern checks,
//	          and the attempt-capped rejection loop
//	cmd/humanrand — flag/config-driven batch printer
//
// Quick taste:
//
//	g := filter.New(filter.WithSeed(576))
//	n, err := g.Next(1, 100) // 20, then 51, then 86, ...
//
// Dive into filter's package documentation for the acceptance rules and
// their exact edge-case semantics.
package humanrand
