// SPDX-License-Identifier: MIT

// Package factor: functional configuration for factor construction and algebra.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package factor

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxCardinality bounds the length of any value buffer the package
	// allocates (New, Product). 1<<24 float64 values is 128 MiB.
	DefaultMaxCardinality = 1 << 24

	// DefaultValidateNaNInf toggles rejection of NaN/Inf values in New.
	// Factor values are arbitrary reals, so the check is opt-in.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxCardinalityInvalid = "factor: WithMaxCardinality: limit must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds resolved configuration. Fields are unexported; use WithX.
type Options struct {
	maxCardinality int  // ceiling on dense allocation
	validateNaNInf bool // reject NaN/Inf values in New
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		maxCardinality: DefaultMaxCardinality,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over defaults, in order. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxCardinality sets the largest scope cardinality for which a value
// buffer may be allocated. Operations that would exceed it return
// ErrCardinalityLimit before allocating.
// Panics if n <= 0.
func WithMaxCardinality(n int) Option {
	if n <= 0 {
		panic(panicMaxCardinalityInvalid)
	}

	return func(o *Options) { o.maxCardinality = n }
}

// WithValidateNaNInf makes New reject NaN and ±Inf values with ErrNaNInf.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// checkCardinality returns ErrCardinalityLimit when n exceeds the ceiling.
func (o Options) checkCardinality(n int) error {
	if n > o.maxCardinality {
		return ErrCardinalityLimit
	}

	return nil
}

// checkFinite returns ErrNaNInf for the first non-finite value when validation is on.
func (o Options) checkFinite(values []float64) error {
	if !o.validateNaNInf {
		return nil
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
