package quantile_test

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvquantile/quantile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-9

// deciles is an even-length sample; sorted it reads [1 3 3 4 4 5 6 7 7 8].
func deciles() []float64 { return []float64{6, 4, 3, 3, 5, 7, 4, 7, 8, 1} }

var allMethods = []quantile.Method{
	quantile.Type1, quantile.Type2, quantile.Type3,
	quantile.Type4, quantile.Type5, quantile.Type6,
	quantile.Type7, quantile.Type8, quantile.Type9,
}

// TestEstimate_Deciles checks every method against hand-computed values at
// p ∈ {0, 0.1, 0.5, 0.9, 1}.
func TestEstimate_Deciles(t *testing.T) {
	sorted := deciles()
	slices.Sort(sorted)

	cases := []struct {
		m    quantile.Method
		want [5]float64 // p = 0, 0.1, 0.5, 0.9, 1
	}{
		{quantile.Type1, [5]float64{1, 1, 4, 7, 8}},
		{quantile.Type2, [5]float64{1, 2, 4.5, 7.5, 8}},
		{quantile.Type3, [5]float64{1, 1, 4, 7, 8}},
		{quantile.Type4, [5]float64{1, 1, 4, 7, 8}},
		{quantile.Type5, [5]float64{1, 2, 4.5, 7.5, 8}},
		{quantile.Type6, [5]float64{1, 1.2, 4.5, 7.9, 8}},
		{quantile.Type7, [5]float64{1, 2.8, 4.5, 7.1, 8}},
		{quantile.Type8, [5]float64{1, 1.733333, 4.5, 7.633333, 8}},
		{quantile.Type9, [5]float64{1, 1.8, 4.5, 7.6, 8}},
	}
	probs := [5]float64{0, 0.1, 0.5, 0.9, 1}

	for _, tc := range cases {
		t.Run(tc.m.String(), func(t *testing.T) {
			for k, p := range probs {
				got := quantile.EstimateSorted(sorted, p, tc.m)
				assert.InDelta(t, tc.want[k], got, 1e-4, "p=%g", p)
			}
		})
	}
}

// TestEstimate_UnknownMethodIsType7 ensures the engine dispatches any
// unrecognised selector to the default estimator.
func TestEstimate_UnknownMethodIsType7(t *testing.T) {
	sorted := deciles()
	slices.Sort(sorted)

	for _, m := range []quantile.Method{0, -3, 10, 42} {
		for _, p := range []float64{0, 0.1, 0.35, 0.5, 0.9, 1} {
			want := quantile.EstimateSorted(sorted, p, quantile.Type7)
			require.Equal(t, want, quantile.EstimateSorted(sorted, p, m), "m=%d p=%g", int(m), p)
		}
	}
}

// TestEstimate_Extremes verifies min at p=0 and max at p=1 for every method
// and sample size, including n=1.
func TestEstimate_Extremes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 25; n++ {
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = rng.NormFloat64() * 10
		}
		slices.Sort(sample)

		for _, m := range allMethods {
			assert.Equal(t, sample[0], quantile.EstimateSorted(sample, 0, m), "n=%d %s p=0", n, m)
			assert.Equal(t, sample[n-1], quantile.EstimateSorted(sample, 1, m), "n=%d %s p=1", n, m)
		}
	}
}

// TestEstimate_Type1Type3ReachMaxWithoutRule documents that types 1 and 3
// have no p=1 special case: their rank formulas select x₍ₙ₎ on their own.
func TestEstimate_Type1Type3ReachMaxWithoutRule(t *testing.T) {
	var reads []int
	sorted := []float64{2, 4, 6, 8}
	at := func(i int) float64 {
		reads = append(reads, i)

		return sorted[i]
	}

	for _, m := range []quantile.Method{quantile.Type1, quantile.Type3} {
		reads = reads[:0]
		require.Equal(t, 8.0, quantile.Estimate(at, len(sorted), 1, m))
		require.Equal(t, []int{3}, reads, "%s reads the last rank once", m)
	}
}

// TestEstimate_Monotone checks p1 < p2 ⇒ Q(p1) ≤ Q(p2) on a dense grid.
func TestEstimate_Monotone(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 2, 3, 7, 10, 31} {
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = float64(rng.Intn(20)) // ties on purpose
		}
		slices.Sort(sample)

		for _, m := range allMethods {
			prev := quantile.EstimateSorted(sample, 0, m)
			for k := 1; k <= 1000; k++ {
				p := float64(k) / 1000
				cur := quantile.EstimateSorted(sample, p, m)
				require.LessOrEqual(t, prev, cur+epsTight, "n=%d %s p=%g", n, m, p)
				prev = cur
			}
		}
	}
}

// TestEstimate_WithinRange ensures every estimate lies within [min, max]
// and the reader is never asked for an index outside [0, n).
func TestEstimate_WithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 5, 9, 64} {
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = rng.Float64()
		}
		slices.Sort(sample)
		at := func(i int) float64 {
			if i < 0 || i >= n {
				t.Fatalf("n=%d: read index %d", n, i)
			}

			return sample[i]
		}

		for _, m := range allMethods {
			for k := 0; k <= 200; k++ {
				p := float64(k) / 200
				got := quantile.Estimate(at, n, p, m)
				require.GreaterOrEqual(t, got, sample[0])
				require.LessOrEqual(t, got, sample[n-1])
			}
		}
	}
}

// TestEstimate_SingleObservation verifies all methods return the only value.
func TestEstimate_SingleObservation(t *testing.T) {
	for _, m := range allMethods {
		for _, p := range []float64{0, 0.01, 0.25, 0.5, 0.99, 1} {
			assert.Equal(t, 42.0, quantile.EstimateSorted([]float64{42}, p, m), fmt.Sprintf("%s p=%g", m, p))
		}
	}
}

// TestMethod_String covers names of valid and invalid selectors.
func TestMethod_String(t *testing.T) {
	assert.Equal(t, "type-7", quantile.DefaultMethod.String())
	assert.Equal(t, "type-1", quantile.Type1.String())
	assert.Equal(t, "Method(0)", quantile.Method(0).String())
	assert.False(t, quantile.Method(10).Valid())
	assert.Equal(t, "cols", quantile.DefaultAxis.String())
	assert.Equal(t, "rows", quantile.AlongRows.String())
	assert.Equal(t, "Axis(3)", quantile.Axis(3).String())
}

// TestEstimate_InfiniteSamples pins how exact ranks next to ±Inf resolve:
// the neighbour is never read, so no 0·Inf term turns the result into NaN.
func TestEstimate_InfiniteSamples(t *testing.T) {
	inf := math.Inf(1)
	upper := []float64{1, inf}

	assert.Equal(t, 1.0, quantile.EstimateSorted(upper, 0, quantile.Type7))
	assert.Equal(t, inf, quantile.EstimateSorted(upper, 0.5, quantile.Type7))
	assert.Equal(t, inf, quantile.EstimateSorted(upper, 1, quantile.Type7))

	lower := []float64{math.Inf(-1), 3, 5}
	assert.Equal(t, 3.0, quantile.EstimateSorted(lower, 0.5, quantile.Type7))
	assert.Equal(t, math.Inf(-1), quantile.EstimateSorted(lower, 0, quantile.Type7))
	assert.Equal(t, 5.0, quantile.EstimateSorted(lower, 1, quantile.Type4))
}
