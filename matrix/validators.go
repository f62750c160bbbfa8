// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateView ensures v is non-nil, has a non-negative shape and offset, and
// that every element it can address lies inside its buffer.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrStrideOverflow.
// Complexity: O(1).
func ValidateView(v *View) error {
	if v == nil {
		return validatorErrorf("ValidateView", ErrNilMatrix)
	}
	if v.rows < 0 || v.cols < 0 || v.offset < 0 {
		return validatorErrorf("ValidateView", ErrBadShape)
	}
	if v.rows == 0 || v.cols == 0 {
		return nil // nothing addressable
	}

	if v.offset >= len(v.data) {
		return validatorErrorf("ValidateView", ErrStrideOverflow)
	}

	// Lowest and highest reachable index; each stride may be negative.
	// Every span is bounded by len(data) before it is added, so no sum wraps.
	lo, hi := v.offset, v.offset
	for _, axis := range [2][2]int{{v.rows, v.rowStride}, {v.cols, v.colStride}} {
		d, ok := axisSpan(axis[0], axis[1], len(v.data))
		if !ok {
			return validatorErrorf("ValidateView", ErrStrideOverflow)
		}
		if d < 0 {
			lo += d
		} else {
			hi += d
		}
	}
	if lo < 0 || hi >= len(v.data) {
		return validatorErrorf("ValidateView", ErrStrideOverflow)
	}

	return nil
}

// axisSpan returns (n-1)*stride when its magnitude is below size, and false
// otherwise. The product is never formed when it could overflow int.
func axisSpan(n, stride, size int) (int, bool) {
	if n <= 1 || stride == 0 {
		return 0, true
	}
	if stride == math.MinInt {
		return 0, false
	}
	abs := stride
	if abs < 0 {
		abs = -abs
	}
	if n-1 > (size-1)/abs {
		return 0, false
	}

	return (n - 1) * stride, true
}
