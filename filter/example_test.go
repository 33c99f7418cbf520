// Package filter_test provides runnable examples for the generator.
// Each example runs via “go test -run Example”, showing code and expected output.
package filter_test

import (
	"fmt"

	"github.com/katalvlaran/humanrand/filter"
)

// ExampleGenerator demonstrates a seeded, reproducible batch: the same
// seed always emits the same accepted sequence.
func ExampleGenerator() {
	// 1) Bind the generator to the deterministic seeded source.
	g := filter.New(filter.WithSeed(42))

	// 2) Draw five filtered values from the inclusive range [1, 100].
	for i := 0; i < 5; i++ {
		n, err := g.Next(1, 100)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(n)
	}
	// Output:
	// 94
	// 21
	// 76
	// 75
	// 66
}

// ExampleGenerator_Next_invalidRange demonstrates the only error the
// package returns: a range whose bounds are reversed.
func ExampleGenerator_Next_invalidRange() {
	g := filter.New(filter.WithSeed(42))

	_, err := g.Next(100, 1)
	fmt.Println(err)
	// Output:
	// filter: start must not exceed end
}

// ExampleGenerator_narrowRange demonstrates filtering in a small range;
// the checks still hold, they just reject more draws along the way.
func ExampleGenerator_narrowRange() {
	g := filter.New(filter.WithSeed(11))

	for i := 0; i < 4; i++ {
		n, err := g.Next(10, 20)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(n)
	}
	// Output:
	// 13
	// 20
	// 16
	// 18
}
