// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors MUST return these sentinels and tests MUST
// check them via errors.Is. No public method panics on user-triggered errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with context via
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape or window is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a buffer whose length does not match the
	// requested shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was written while the finite-only
	// numeric policy was enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or View (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrStrideOverflow indicates that a view's strides and offset reach
	// outside its backing buffer.
	ErrStrideOverflow = errors.New("matrix: strides reach outside the buffer")

	// ErrUnknownDType indicates a data type name with no storage mapping.
	ErrUnknownDType = errors.New("matrix: unknown data type")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
