// Package matrix provides the two-dimensional numeric storage consumed by the
// quantile reductions.
//
// The matrix package provides:
//
//   - Dense, a row-major owner of float64 values whose writes honor an output
//     data type (DType) the same way typed arrays narrow their elements.
//   - View, a read-only strided window (shape, row/column strides and a base
//     offset) over any flat buffer. Views never copy: transposes, single rows,
//     single columns and rectangular windows are all O(1).
//   - FromGonum / ToGonum bridges so gonum matrices can be reduced in place.
//
// Views are what the quantile package walks line by line; Dense is what it
// allocates for results.
//
// See the examples in this package and in quantile for usage patterns.
package matrix
