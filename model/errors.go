// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrInvalidModel wraps any structural problem in a model document.
	ErrInvalidModel = errors.New("model: invalid model")

	// ErrDuplicateVariable indicates a variable name declared twice.
	ErrDuplicateVariable = errors.New("model: duplicate variable")

	// ErrDuplicateFactor indicates a factor name declared twice.
	ErrDuplicateFactor = errors.New("model: duplicate factor")

	// ErrUnknownVariable indicates a reference to an undeclared variable.
	ErrUnknownVariable = errors.New("model: unknown variable")

	// ErrUnknownFactor indicates a reference to an undeclared factor.
	ErrUnknownFactor = errors.New("model: unknown factor")
)
