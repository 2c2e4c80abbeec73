// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
//
// The policy only affects ingestion (Set, Fill, Assign, Convert, FromAny).
// Arithmetic results are produced as computed.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
// Integer element types are always finite.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf rejects NaN/±Inf on ingestion.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts NaN/±Inf on ingestion.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user options over the defaults in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
