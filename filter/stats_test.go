package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/humanrand/filter"
)

// The filter trades a little uniformity for the appearance of randomness;
// this test bounds how much. Over a long run the sample moments must stay
// close to the uniform ones (mean 50.5, stddev ≈ 28.9 for [1,100]) —
// rejections reshape short windows, not the overall distribution.
func TestNext_DistributionNotVisiblySkewed(t *testing.T) {
	g := filter.New(filter.WithSeed(2026))

	const n = 5000
	xs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v, err := g.Next(1, 100)
		if err != nil {
			t.Fatal(err)
		}
		xs = append(xs, float64(v))
	}

	mean := stat.Mean(xs, nil)
	sd := stat.StdDev(xs, nil)

	assert.InDelta(t, 50.5, mean, 5.0, "sample mean drifted")
	assert.InDelta(t, 28.9, sd, 4.0, "sample stddev drifted")

	// Both range endpoints must remain reachable.
	var sawLow, sawHigh bool
	for _, x := range xs {
		if x == 1 {
			sawLow = true
		}
		if x == 100 {
			sawHigh = true
		}
	}
	assert.True(t, sawLow, "value 1 never emitted")
	assert.True(t, sawHigh, "value 100 never emitted")
}
