// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the factor
// package. Operations return these sentinels (possibly wrapped with call-site
// context) and tests check them via errors.Is. No operation panics on
// caller-supplied data; panics are reserved for invalid Option values.

package factor

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "factor: ..." for grep-ability. Call sites wrap
// with the helpers below, e.g. "Scope.LinearIndex(X): factor: missing assignment".

var (
	// ErrDuplicateVariableName is returned when a Scope would hold two variables
	// with the same name.
	ErrDuplicateVariableName = errors.New("factor: duplicate variable name")

	// ErrLengthMismatch is returned when a value slice does not match the
	// cardinality of its scope.
	ErrLengthMismatch = errors.New("factor: value count does not match scope cardinality")

	// ErrMissingAssignment indicates that an assignment omits a variable the
	// scope needs.
	ErrMissingAssignment = errors.New("factor: missing assignment")

	// ErrUnknownVariable indicates that a name does not belong to the scope.
	ErrUnknownVariable = errors.New("factor: unknown variable")

	// ErrValueNotFound indicates that a value is outside a variable's domain.
	ErrValueNotFound = errors.New("factor: value not in domain")

	// ErrIndexOutOfRange indicates a position or linear index outside [0, cardinality).
	ErrIndexOutOfRange = errors.New("factor: index out of range")

	// ErrEmptyDomain is returned by NewVariable for an empty domain.
	ErrEmptyDomain = errors.New("factor: empty domain")

	// ErrIncomparableValue is returned by NewVariable and IndexOf when a value
	// holds non-comparable contents (slice, map, func), directly or inside an
	// interface field.
	ErrIncomparableValue = errors.New("factor: domain value is not comparable")

	// ErrConflictingVariable indicates two variables share a name but not a domain.
	ErrConflictingVariable = errors.New("factor: conflicting variable definitions")

	// ErrCardinalityOverflow indicates the joint cardinality does not fit in int.
	ErrCardinalityOverflow = errors.New("factor: cardinality overflows int")

	// ErrCardinalityLimit indicates the joint cardinality exceeds the configured ceiling.
	ErrCardinalityLimit = errors.New("factor: cardinality exceeds limit")

	// ErrNaNInf signals a NaN or ±Inf value under WithValidateNaNInf(true).
	ErrNaNInf = errors.New("factor: NaN or Inf encountered")

	// ErrNilFactor indicates a nil or zero-value *Factor; only New, Unit and
	// the algebra produce usable factors.
	ErrNilFactor = errors.New("factor: nil or zero-value factor")
)

// variableErrorf wraps err with Variable method context.
func variableErrorf(method, name string, err error) error {
	return fmt.Errorf("Variable.%s(%s): %w", method, name, err)
}

// scopeErrorf wraps err with Scope method context; subject is usually a variable name.
func scopeErrorf(method, subject string, err error) error {
	return fmt.Errorf("Scope.%s(%s): %w", method, subject, err)
}

// factorErrorf wraps err with Factor method context.
func factorErrorf(method string, err error) error {
	return fmt.Errorf("Factor.%s: %w", method, err)
}
