package quantile_test

import (
	"fmt"

	"github.com/katalvlaran/lvquantile/matrix"
	"github.com/katalvlaran/lvquantile/quantile"
)

// ExampleOf computes the median and the 90th percentile of an unsorted
// sample with the default and an explicit estimator.
func ExampleOf() {
	samples := []float64{6, 4, 3, 3, 5, 7, 4, 7, 8, 1}

	median, ok, err := quantile.Of(samples, 0.5)
	if err != nil || !ok {
		fmt.Println("no median:", err)

		return
	}
	p90, _, _ := quantile.Of(samples, 0.9, quantile.WithMethod(quantile.Type1))
	fmt.Printf("median=%.1f p90=%.1f\n", median, p90)
	// Output:
	// median=4.5 p90=7.0
}

// ExampleOfFunc extracts a field from each record before estimating.
func ExampleOfFunc() {
	type request struct {
		Path      string
		LatencyMS float64
	}
	reqs := []request{
		{"/a", 120}, {"/b", 80}, {"/c", 95}, {"/d", 300}, {"/e", 110},
	}

	p90, _, err := quantile.OfFunc(reqs, 0.9, func(r request, _ int) float64 { return r.LatencyMS })
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("p90 latency=%.1fms\n", p90)
	// Output:
	// p90 latency=228.0ms
}

// ExampleOfMatrix reduces a 2×3 matrix per row (default) and per column.
func ExampleOfMatrix() {
	m, err := matrix.NewDenseFrom(2, 3, []float64{
		3, 1, 2,
		6, 5, 4,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	perRow, _, _ := quantile.OfMatrix(m.Strided(), 0.5)
	perCol, _, _ := quantile.OfMatrix(m.Strided(), 0.5, quantile.WithAxis(quantile.AlongRows))
	fmt.Print(perRow)
	fmt.Print(perCol)
	// Output:
	// [2]
	// [5]
	// [4.5, 3, 3]
}
