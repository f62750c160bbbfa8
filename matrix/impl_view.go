// SPDX-License-Identifier: MIT

// Package matrix - strided read-only views.
//
// Purpose:
//   - Model a 2D store as (data, shape, row/col strides, offset) so that any
//     layout (row-major, column-major, transposed, windowed, gonum-backed) is
//     addressed with one formula: offset + i*rowStride + j*colStride.
//   - Never copy and never mutate the underlying buffer.
//
// AI-Hints:
//   - T() swaps shape and strides: reducing "along rows" is reducing the transpose "along columns".
//   - Index(i,j) is unchecked and meant for hot loops; At(i,j) is the checked public accessor.

package matrix

import "fmt"

// View is a non-owning, read-only strided window over a flat buffer.
type View struct {
	data      []float64 // shared backing storage
	rows      int       // view height
	cols      int       // view width
	rowStride int       // elements to skip to advance one row
	colStride int       // elements to skip to advance one column
	offset    int       // index of element (0,0) in data
}

// NewView builds a strided view over data.
// MAIN DESCRIPTION:
//   - Validate that every addressable element lies inside data.
//
// Implementation:
//   - Stage 1: reject negative shape or offset (ErrBadShape).
//   - Stage 2: for non-empty shapes, compute the lowest and highest reachable
//     index under the given strides (which may be negative) and bound-check them.
//
// Errors:
//   - ErrBadShape, ErrStrideOverflow.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewView(data []float64, rows, cols, rowStride, colStride, offset int) (*View, error) {
	v := &View{
		data:      data,
		rows:      rows,
		cols:      cols,
		rowStride: rowStride,
		colStride: colStride,
		offset:    offset,
	}
	if err := ValidateView(v); err != nil {
		return nil, err
	}

	return v, nil
}

// Rows returns the number of rows in the view.
func (v *View) Rows() int { return v.rows }

// Cols returns the number of columns in the view.
func (v *View) Cols() int { return v.cols }

// Shape packs Rows() and Cols().
func (v *View) Shape() (rows, cols int) { return v.rows, v.cols }

// Strides returns the (row, column) strides.
func (v *View) Strides() (rowStride, colStride int) { return v.rowStride, v.colStride }

// Offset returns the index of element (0,0) in the backing buffer.
func (v *View) Offset() int { return v.offset }

// Data returns the shared backing buffer. Callers must treat it as read-only.
func (v *View) Data() []float64 { return v.data }

// Empty reports whether either dimension is zero.
func (v *View) Empty() bool { return v.rows == 0 || v.cols == 0 }

// IsVector reports whether the view is a single row or a single column.
func (v *View) IsVector() bool { return v.rows == 1 || v.cols == 1 }

// Index returns the backing-buffer index of (i,j) without bounds checks.
func (v *View) Index(i, j int) int { return v.offset + i*v.rowStride + j*v.colStride }

// At reads element (i,j) or returns ErrOutOfRange.
// Complexity: O(1).
func (v *View) At(i, j int) (float64, error) {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.data[v.Index(i, j)], nil
}

// T returns the transposed view (shape and strides swapped). No copy.
func (v *View) T() *View {
	return &View{
		data:      v.data,
		rows:      v.cols,
		cols:      v.rows,
		rowStride: v.colStride,
		colStride: v.rowStride,
		offset:    v.offset,
	}
}

// Row returns row i as a 1×cols view.
func (v *View) Row(i int) (*View, error) {
	if i < 0 || i >= v.rows {
		return nil, fmt.Errorf("View.Row(%d): %w", i, ErrOutOfRange)
	}

	return &View{
		data:      v.data,
		rows:      1,
		cols:      v.cols,
		rowStride: v.rowStride,
		colStride: v.colStride,
		offset:    v.Index(i, 0),
	}, nil
}

// Col returns column j as a rows×1 view.
func (v *View) Col(j int) (*View, error) {
	if j < 0 || j >= v.cols {
		return nil, fmt.Errorf("View.Col(%d): %w", j, ErrOutOfRange)
	}

	return &View{
		data:      v.data,
		rows:      v.rows,
		cols:      1,
		rowStride: v.rowStride,
		colStride: v.colStride,
		offset:    v.Index(0, j),
	}, nil
}

// Values copies the view's elements in row-major order.
// Complexity: O(rows*cols).
func (v *View) Values() []float64 {
	out := make([]float64, 0, v.rows*v.cols)
	var i, j int
	for i = 0; i < v.rows; i++ {
		for j = 0; j < v.cols; j++ {
			out = append(out, v.data[v.Index(i, j)])
		}
	}

	return out
}

// Strided lets a *View be passed wherever a Strider is accepted.
func (v *View) Strided() *View { return v }

var _ Strider = (*View)(nil)
