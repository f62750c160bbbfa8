// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Purpose:
//   - Reduce gonum matrices without copying: a *mat.Dense (or any
//     mat.RawMatrixer) exposes a row-major blas64.General whose Stride maps
//     directly onto View.rowStride.
//   - Hand Dense results to gonum for further linear algebra.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum returns a read-only view sharing storage with a gonum matrix.
//
// Errors:
//   - ErrNilMatrix when g is nil; ErrStrideOverflow on an inconsistent raw layout.
//
// Complexity: O(1).
func FromGonum(g mat.RawMatrixer) (*View, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	raw := g.RawMatrix()

	return NewView(raw.Data, raw.Rows, raw.Cols, raw.Stride, 1, 0)
}

// ToGonum wraps the Dense buffer as a *mat.Dense. Storage is shared, so
// writes on either side are visible to both.
//
// Errors:
//   - ErrNilMatrix when m is nil (see ValidateNotNil).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Dense.ToGonum: %w", err)
	}

	return mat.NewDense(m.r, m.c, m.data), nil
}
