// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicDTypeInvalid = "matrix: WithDType: unknown data type"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool  // DefaultValidateNaNInf
	dtype          DType // DefaultDType
}

// WithValidateNaNInf enables strict finite-value validation on Set.
// This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on Set.
//
// Notes:
//   - Quantile results propagate NaN from NaN samples; result matrices are
//     built with this policy so such values are representable.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDType selects the storage width of the matrix.
// Panics on an undeclared DType (programmer error); use ParseDType to turn
// user input into a DType with an error instead.
func WithDType(dt DType) Option {
	if !dt.Valid() {
		panic(panicDTypeInvalid)
	}

	return func(o *Options) { o.dtype = dt }
}

// gatherOptions applies user setters over documented defaults.
// Apply in order; last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		dtype:          DefaultDType,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
