package quantile

import (
	"github.com/katalvlaran/lvquantile/matrix"
	"github.com/sourcegraph/conc/pool"
)

// lines describes a matrix as count independent lines of length elements
// each: element j of line i lives at data[offset + i*lineStride + j*elemStride].
type lines struct {
	data       []float64
	count      int
	length     int
	lineStride int
	elemStride int
	offset     int
}

// linesOf maps an axis onto line geometry.
//   - AlongCols: one line per row, walking its columns.
//   - AlongRows: one line per column, walking its rows.
func linesOf(v *matrix.View, axis Axis) lines {
	rs, cs := v.Strides()
	if axis == AlongRows {
		return lines{data: v.Data(), count: v.Cols(), length: v.Rows(), lineStride: cs, elemStride: rs, offset: v.Offset()}
	}

	return lines{data: v.Data(), count: v.Rows(), length: v.Cols(), lineStride: rs, elemStride: cs, offset: v.Offset()}
}

// AlongAxis writes the p-quantile of every line of v into out.
//
// Behavior:
//   - axis == AlongCols: M = rows, out[i] is the quantile of row i.
//   - axis == AlongRows: M = cols, out[j] is the quantile of column j.
//   - Returns false and leaves out untouched when v has a zero dimension.
//   - sorted == true: every line is trusted to be ascending and is read
//     through the strides without a temporary buffer.
//   - v is never mutated.
//
// Contract: out has exactly M slots, 0 ≤ p ≤ 1, v valid (see matrix.ValidateView).
// No validation is performed; see OfMatrix.
//
// Complexity: O(M·N log N) unsorted, O(M) sorted.
func AlongAxis(out []float64, v *matrix.View, p float64, sorted bool, m Method, axis Axis) bool {
	return alongAxis(out, v, p, sorted, m, axis, DefaultWorkers)
}

// alongAxis is AlongAxis with up to workers goroutines. Lines are split into
// contiguous chunks; each chunk owns one scratch buffer and a disjoint range
// of out, so no synchronization beyond the final Wait is needed.
func alongAxis(out []float64, v *matrix.View, p float64, sorted bool, m Method, axis Axis, workers int) bool {
	ls := linesOf(v, axis)
	if ls.count == 0 || ls.length == 0 {
		return false
	}
	if workers <= 1 || ls.count < 2 {
		ls.reduceRange(out, 0, ls.count, p, sorted, m)

		return true
	}

	workers = min(workers, ls.count)
	chunk := (ls.count + workers - 1) / workers
	wp := pool.New().WithMaxGoroutines(workers)
	for lo := 0; lo < ls.count; lo += chunk {
		hi := min(lo+chunk, ls.count)
		wp.Go(func() {
			ls.reduceRange(out, lo, hi, p, sorted, m)
		})
	}
	wp.Wait()

	return true
}

// reduceRange reduces lines [lo, hi) into out[lo:hi], reusing one scratch buffer.
func (ls lines) reduceRange(out []float64, lo, hi int, p float64, sorted bool, m Method) {
	var scratch []float64
	if !sorted {
		scratch = make([]float64, ls.length)
	}
	for i := lo; i < hi; i++ {
		out[i] = ls.reduce(i, scratch, p, sorted, m)
	}
}

// reduce computes the quantile of line i.
func (ls lines) reduce(i int, scratch []float64, p float64, sorted bool, m Method) float64 {
	base := ls.offset + i*ls.lineStride
	if sorted {
		return Estimate(func(j int) float64 { return ls.data[base+j*ls.elemStride] }, ls.length, p, m)
	}
	for j := range scratch {
		scratch[j] = ls.data[base+j*ls.elemStride]
	}
	sortAscending(scratch)

	return EstimateSorted(scratch, p, m)
}
