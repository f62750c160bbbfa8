// SPDX-License-Identifier: MIT

// Package matrix - output data types.
//
// Purpose:
//   - Describe the numeric storage width of a result matrix.
//   - Narrow float64 values into that width with typed-array semantics:
//     integers truncate toward zero and wrap modulo 2^bits, uint8_clamped
//     saturates and rounds half to even, float32 rounds to nearest.
//
// Determinism:
//   - Cast is a pure function of (DType, value).

package matrix

import (
	"fmt"
	"math"
)

// DType identifies the numeric storage width of a Dense matrix.
// The zero value is Float64 so an unconfigured Dense stores values unchanged.
type DType int

const (
	Float64 DType = iota
	Float32
	Int8
	Int16
	Int32
	Uint8
	Uint8Clamped
	Uint16
	Uint32
)

// DefaultDType is the storage used when no data type is requested.
const DefaultDType = Float64

var dtypeNames = [...]string{
	Float64:      "float64",
	Float32:      "float32",
	Int8:         "int8",
	Int16:        "int16",
	Int32:        "int32",
	Uint8:        "uint8",
	Uint8Clamped: "uint8_clamped",
	Uint16:       "uint16",
	Uint32:       "uint32",
}

// ParseDType maps a data type name ("float64", "uint8_clamped", ...) to its DType.
// Returns ErrUnknownDType for any other name.
func ParseDType(name string) (DType, error) {
	for dt, s := range dtypeNames {
		if s == name {
			return DType(dt), nil
		}
	}

	return DefaultDType, fmt.Errorf("ParseDType(%q): %w", name, ErrUnknownDType)
}

// Valid reports whether dt is one of the declared data types.
func (dt DType) Valid() bool { return dt >= Float64 && dt <= Uint32 }

// String returns the canonical data type name.
func (dt DType) String() string {
	if !dt.Valid() {
		return fmt.Sprintf("DType(%d)", int(dt))
	}

	return dtypeNames[dt]
}

// Cast narrows v into the storage width of dt and widens it back to float64.
// Implementation:
//   - Float64: identity.
//   - Float32: round to nearest float32.
//   - Integers: NaN/±Inf become 0; otherwise truncate and wrap modulo 2^bits.
//   - Uint8Clamped: NaN becomes 0; clamp to [0,255]; round half to even.
//
// Complexity:
//   - Time O(1), Space O(1).
func (dt DType) Cast(v float64) float64 {
	switch dt {
	case Float32:
		return float64(float32(v))
	case Int8:
		return wrapInt(v, 8, true)
	case Int16:
		return wrapInt(v, 16, true)
	case Int32:
		return wrapInt(v, 32, true)
	case Uint8:
		return wrapInt(v, 8, false)
	case Uint16:
		return wrapInt(v, 16, false)
	case Uint32:
		return wrapInt(v, 32, false)
	case Uint8Clamped:
		if math.IsNaN(v) || v <= 0 {
			return 0
		}
		if v >= 255 {
			return 255
		}

		return math.RoundToEven(v)
	default:
		return v
	}
}

// wrapInt applies two's-complement wrapping of trunc(v) into bits-wide storage.
func wrapInt(v float64, bits int, signed bool) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	span := math.Ldexp(1, bits) // 2^bits, exact for bits <= 32
	w := math.Mod(math.Trunc(v), span)
	if w < 0 {
		w += span
	}
	if signed && w >= span/2 {
		w -= span
	}

	return w
}
