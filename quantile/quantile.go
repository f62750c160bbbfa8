package quantile

import (
	"github.com/katalvlaran/lvquantile/matrix"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Operation name constants for unified error wrapping.
const (
	opOf       = "quantile.Of"
	opOfFunc   = "quantile.OfFunc"
	opOfMatrix = "quantile.OfMatrix"
)

// prepare resolves options and validates p, reporting every violation at once.
func prepare(p float64, opts []Option) (Options, error) {
	o, err := gatherOptions(opts...)

	return o, multierr.Append(err, ValidateProbability(p))
}

// Of computes the p-quantile of x.
//
// Options: WithSorted, WithMethod (others are ignored).
//
// Returns:
//   - (q, true, nil) on success.
//   - (0, false, nil) when x is empty.
//   - (0, false, err) on an invalid probability or option.
//
// x is never reordered.
func Of(x []float64, p float64, opts ...Option) (float64, bool, error) {
	o, err := prepare(p, opts)
	if err != nil {
		return 0, false, quantileErrorf(opOf, err)
	}
	q, ok := Sequence(x, p, o.sorted, o.method)

	return q, ok, nil
}

// OfFunc computes the p-quantile of the values fn extracts from records.
// fn is called exactly once per record, in order.
//
// Options: WithSorted (the extracted values are ascending), WithMethod.
//
// Returns the same triple as Of; a nil fn is reported as ErrNilAccessor.
func OfFunc[T any](records []T, p float64, fn Accessor[T], opts ...Option) (float64, bool, error) {
	o, err := prepare(p, opts)
	if fn == nil {
		err = multierr.Append(err, ErrNilAccessor)
	}
	if err != nil {
		return 0, false, quantileErrorf(opOfFunc, err)
	}
	q, ok := ByAccessor(records, p, fn, o.sorted, o.method)

	return q, ok, nil
}

// OfMatrix computes the p-quantile of every line of v.
//
// Behavior:
//   - AlongCols (default, dim=2): result is rows×1, one value per row.
//   - AlongRows (dim=1): result is 1×cols, one value per column.
//   - A 1×k or k×1 view is reduced as one flat sequence; the result is 1×1.
//   - Results are stored with the configured dtype (WithDType, WithDTypeName).
//   - A view with a zero dimension yields (nil, false, nil).
//
// Options: all.
//
// Errors:
//   - Invalid probability or options (see errors.go), matrix.ErrNilMatrix,
//     matrix.ErrBadShape, matrix.ErrStrideOverflow.
func OfMatrix(v *matrix.View, p float64, opts ...Option) (*matrix.Dense, bool, error) {
	o, err := prepare(p, opts)
	err = multierr.Append(err, matrix.ValidateView(v))
	if err != nil {
		return nil, false, quantileErrorf(opOfMatrix, err)
	}
	if v.Empty() {
		return nil, false, nil
	}

	rows, cols := v.Shape()
	fields := logrus.Fields{
		"rows":   rows,
		"cols":   cols,
		"method": o.method,
		"dtype":  o.dtype,
	}

	var buf []float64
	outRows, outCols := 1, 1
	switch {
	case v.IsVector():
		vals := v.Values()
		if !o.sorted {
			sortAscending(vals)
		}
		buf = []float64{EstimateSorted(vals, p, o.method)}
		o.logger.WithFields(fields).Debug("quantile: reduced vector")

	case o.axis == AlongRows:
		outCols = cols
		buf = make([]float64, cols)
		alongAxis(buf, v, p, o.sorted, o.method, o.axis, o.workers)
		o.logger.WithFields(fields).WithField("workers", o.workers).Debug("quantile: reduced columns")

	default:
		outRows = rows
		buf = make([]float64, rows)
		alongAxis(buf, v, p, o.sorted, o.method, o.axis, o.workers)
		o.logger.WithFields(fields).WithField("workers", o.workers).Debug("quantile: reduced rows")
	}

	out, err := matrix.NewDenseFrom(outRows, outCols, buf, matrix.WithDType(o.dtype), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, false, quantileErrorf(opOfMatrix, err)
	}

	return out, true, nil
}
