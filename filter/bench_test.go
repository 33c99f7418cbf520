package filter_test

import (
	"testing"

	"github.com/katalvlaran/humanrand/filter"
)

// BenchmarkNext_WideRange measures the common case: a large range where
// almost every first draw is accepted.
func BenchmarkNext_WideRange(b *testing.B) {
	g := filter.New(filter.WithSeed(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Next(1, 1000000); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNext_NarrowRange measures a tight range where the checks fire
// often and each accepted value costs several draws.
func BenchmarkNext_NarrowRange(b *testing.B) {
	g := filter.New(filter.WithSeed(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Next(1, 10); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHistorySnapshot measures the History copy at full capacity.
func BenchmarkHistorySnapshot(b *testing.B) {
	g := filter.New(filter.WithSeed(1))
	for i := 0; i < 2*filter.HistoryCapacity; i++ {
		if _, err := g.Next(1, 1000000); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.History()
	}
}
