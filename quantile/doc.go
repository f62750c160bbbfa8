// Package quantile computes sample quantiles of numeric data with the nine
// order-statistic estimators of Hyndman & Fan (1996), the same family exposed
// as types 1–9 by common statistical software.
//
// 🚀 What is a sample quantile?
//
//	Given observations x₍₁₎ ≤ … ≤ x₍ₙ₎ and a probability p ∈ [0,1], a
//	quantile estimator picks a continuous rank h from (n, p) and either
//	selects the order statistic nearest h (types 1–3) or interpolates
//	linearly between x₍⌊h⌋₎ and x₍⌊h⌋₊₁₎ (types 4–9). Every type pins the
//	probability extremes to the observed minimum and maximum.
//
// ✨ Key features:
//   - one shared estimator engine over a random-access reader
//   - flat slices (Of), records through an accessor (OfFunc), and
//     matrices reduced along rows or columns (OfMatrix)
//   - zero-copy strided reads when lines are already sorted
//   - optional bounded parallelism across matrix lines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvquantile/quantile"
//
//	median, ok, err := quantile.Of(samples, 0.5)
//	p90, ok, err := quantile.Of(samples, 0.9, quantile.WithMethod(quantile.Type6))
//
//	// per-row medians of a matrix, stored as uint8
//	out, ok, err := quantile.OfMatrix(m.Strided(), 0.5, quantile.WithDTypeName("uint8"))
//
// An empty sample (or a matrix with a zero dimension) is not an error: the
// call reports ok == false.
//
// Performance:
//
//   - Time:   O(n log n) per sample (sort), O(1) after sorting
//   - Memory: O(n) scratch; none for already-sorted inputs
package quantile
