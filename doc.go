// Package lvquantile computes sample quantiles of numbers, of records through
// an accessor, and of matrices reduced along rows or columns.
//
// 🚀 What is lvquantile?
//
//	A small numeric library that brings together:
//		• Estimators: all nine Hyndman–Fan sample quantile types (1–9)
//		• Sequences: flat slices, sorted or not, never reordered
//		• Records: any []T through an accessor func(rec T, i int) float64
//		• Matrices: strided views reduced per row or per column, with
//		  typed-array output storage (float32, int8 … uint8_clamped)
//
// ✨ Why choose lvquantile?
//
//   - One estimator engine shared by every entry point
//   - Zero-copy reads of already-sorted lines through arbitrary strides
//   - gonum interop: reduce a *mat.Dense in place, hand results back
//   - Optional bounded parallelism across matrix lines
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/  : Dense storage, strided View, output data types, gonum bridge
//	quantile/: estimators, sequence/accessor/axis adapters, validated facades
//
// Quick ASCII example (per-row medians, default type 7):
//
//	[3 1 2]      [2]
//	[6 5 4]  →   [5]
//
//	go get github.com/katalvlaran/lvquantile/quantile
package lvquantile
