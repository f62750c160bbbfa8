package quantile

import "fmt"

// Method selects one of the nine quantile estimators.
//
//   - Type1: inverse of the empirical CDF.
//   - Type2: like Type1 with averaging at discontinuities.
//   - Type3: nearest order statistic, halves rounding up.
//   - Type4: linear interpolation of the empirical CDF.
//   - Type5: piecewise linear, knots at the midpoints of the steps.
//   - Type6: p(k) = k/(n+1) (Minitab, SPSS).
//   - Type7: p(k) = (k-1)/(n-1) (S, R and NumPy default).
//   - Type8: approximately median-unbiased.
//   - Type9: approximately unbiased for normal samples.
type Method int

const (
	Type1 Method = iota + 1
	Type2
	Type3
	Type4
	Type5
	Type6
	Type7
	Type8
	Type9
)

// DefaultMethod is used when no method is configured.
const DefaultMethod = Type7

// Valid reports whether m is one of Type1..Type9.
func (m Method) Valid() bool { return m >= Type1 && m <= Type9 }

// String returns "type-N" for valid methods.
func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return fmt.Sprintf("type-%d", int(m))
}

// Axis selects the direction of a matrix reduction.
//
//   - AlongRows: walk down the rows: one result per column (dim = 1).
//   - AlongCols: walk across the columns: one result per row (dim = 2).
type Axis int

const (
	AlongRows Axis = iota + 1
	AlongCols
)

// DefaultAxis is used when no axis is configured.
const DefaultAxis = AlongCols

// Valid reports whether a is AlongRows or AlongCols.
func (a Axis) Valid() bool { return a == AlongRows || a == AlongCols }

func (a Axis) String() string {
	switch a {
	case AlongRows:
		return "rows"
	case AlongCols:
		return "cols"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}
