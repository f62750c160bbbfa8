package quantile

import (
	"fmt"

	"github.com/katalvlaran/lvquantile/matrix"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSorted treats inputs as unsorted; a sorted copy is made.
	DefaultSorted = false

	// DefaultWorkers reduces matrix lines sequentially.
	DefaultWorkers = 1
)

// Option mutates internal options. Options never fail on their own; invalid
// values are recorded and reported together by the entry point that
// consumes them.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	sorted  bool
	method  Method
	axis    Axis
	dtype   matrix.DType
	workers int
	logger  logrus.FieldLogger

	errs error // accumulated validation failures
}

// WithSorted declares that inputs (or every matrix line) are already in
// ascending order, so they are read in place without sorting.
func WithSorted(sorted bool) Option {
	return func(o *Options) { o.sorted = sorted }
}

// WithMethod selects the estimator. Default: Type7.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if !m.Valid() {
			o.errs = multierr.Append(o.errs, fmt.Errorf("method %d: %w", int(m), ErrBadMethod))

			return
		}
		o.method = m
	}
}

// WithAxis selects the matrix reduction direction. Default: AlongCols.
// Ignored by Of and OfFunc.
func WithAxis(a Axis) Option {
	return func(o *Options) {
		if !a.Valid() {
			o.errs = multierr.Append(o.errs, fmt.Errorf("dim %d: %w", int(a), ErrBadAxis))

			return
		}
		o.axis = a
	}
}

// WithDType selects the storage width of matrix results. Default: float64.
// Ignored by Of and OfFunc.
func WithDType(dt matrix.DType) Option {
	return func(o *Options) {
		if !dt.Valid() {
			o.errs = multierr.Append(o.errs, fmt.Errorf("dtype %d: %w", int(dt), matrix.ErrUnknownDType))

			return
		}
		o.dtype = dt
	}
}

// WithDTypeName is WithDType keyed by name ("float64", "int32", "uint8_clamped", ...).
func WithDTypeName(name string) Option {
	return func(o *Options) {
		dt, err := matrix.ParseDType(name)
		if err != nil {
			o.errs = multierr.Append(o.errs, err)

			return
		}
		o.dtype = dt
	}
}

// WithParallel reduces matrix lines with up to workers goroutines.
// Each line writes its own output slot; results are identical to the
// sequential reduction. Default: 1 (sequential).
func WithParallel(workers int) Option {
	return func(o *Options) {
		if workers <= 0 {
			o.errs = multierr.Append(o.errs, fmt.Errorf("workers %d: %w", workers, ErrBadWorkers))

			return
		}
		o.workers = workers
	}
}

// WithLogger routes debug records to l instead of the package logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			o.errs = multierr.Append(o.errs, ErrNilLogger)

			return
		}
		o.logger = l
	}
}

// gatherOptions applies user setters over documented defaults and returns
// every recorded violation at once.
func gatherOptions(user ...Option) (Options, error) {
	o := Options{
		sorted:  DefaultSorted,
		method:  DefaultMethod,
		axis:    DefaultAxis,
		dtype:   matrix.DefaultDType,
		workers: DefaultWorkers,
		logger:  log,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o, o.errs
}
