package quantile

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the validated entry points (Of, OfFunc,
// OfMatrix). The core adapters (Sequence, ByAccessor, AlongAxis) never
// return errors. Match with errors.Is.
var (
	// ErrNaNProbability indicates a NaN probability.
	ErrNaNProbability = errors.New("quantile: probability must be numeric")

	// ErrProbabilityRange indicates a probability outside [0,1].
	ErrProbabilityRange = errors.New("quantile: probability must be on the interval [0,1]")

	// ErrBadMethod indicates a method outside Type1..Type9.
	ErrBadMethod = errors.New("quantile: method must be an integer between 1 and 9")

	// ErrBadAxis indicates an axis other than AlongRows or AlongCols.
	ErrBadAxis = errors.New("quantile: dimension must be 1 (rows) or 2 (columns)")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("quantile: parallel workers must be > 0")

	// ErrNilAccessor indicates a nil accessor function.
	ErrNilAccessor = errors.New("quantile: accessor must be a function")

	// ErrNilLogger indicates a nil logger passed to WithLogger.
	ErrNilLogger = errors.New("quantile: logger must not be nil")
)

// quantileErrorf wraps err with the entry point tag.
func quantileErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
