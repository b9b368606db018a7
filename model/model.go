// SPDX-License-Identifier: MIT

// Package model loads discrete factor models from YAML.
//
// A model file declares variables (name + ordered domain) and factors (name,
// scope as a list of variable names, values in the scope's row-major order).
// Loading validates every declaration through the factor package, so a
// loaded Model only ever holds well-formed factors.
package model

import (
	"fmt"

	"github.com/katalvlaran/lvfactor/factor"
)

// Model is an immutable, validated set of named variables and factors.
type Model struct {
	vars        map[string]factor.Variable
	varOrder    []string
	factors     map[string]*factor.Factor
	factorOrder []string
}

// Build validates doc and assembles a Model. Declaration order is preserved.
func Build(doc Document, opts ...factor.Option) (*Model, error) {
	m := &Model{
		vars:    make(map[string]factor.Variable, len(doc.Variables)),
		factors: make(map[string]*factor.Factor, len(doc.Factors)),
	}

	for _, spec := range doc.Variables {
		if _, dup := m.vars[spec.Name]; dup {
			return nil, fmt.Errorf("%w: variable %q: %w", ErrInvalidModel, spec.Name, ErrDuplicateVariable)
		}
		v, err := factor.NewVariable(spec.Name, spec.Domain...)
		if err != nil {
			return nil, fmt.Errorf("%w: variable %q: %w", ErrInvalidModel, spec.Name, err)
		}
		m.vars[spec.Name] = v
		m.varOrder = append(m.varOrder, spec.Name)
	}

	for _, spec := range doc.Factors {
		if _, dup := m.factors[spec.Name]; dup {
			return nil, fmt.Errorf("%w: factor %q: %w", ErrInvalidModel, spec.Name, ErrDuplicateFactor)
		}
		s, err := m.Scope(spec.Scope...)
		if err != nil {
			return nil, fmt.Errorf("%w: factor %q: %w", ErrInvalidModel, spec.Name, err)
		}
		f, err := factor.New(s, spec.Values, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: factor %q: %w", ErrInvalidModel, spec.Name, err)
		}
		m.factors[spec.Name] = f
		m.factorOrder = append(m.factorOrder, spec.Name)
	}

	return m, nil
}

// Variable returns the declared variable called name.
func (m *Model) Variable(name string) (factor.Variable, error) {
	v, ok := m.vars[name]
	if !ok {
		return factor.Variable{}, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return v, nil
}

// Factor returns the declared factor called name.
func (m *Model) Factor(name string) (*factor.Factor, error) {
	f, ok := m.factors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFactor, name)
	}

	return f, nil
}

// Scope builds a scope from declared variable names, in the given order.
func (m *Model) Scope(names ...string) (factor.Scope, error) {
	vars := make([]factor.Variable, len(names))
	for i, n := range names {
		v, err := m.Variable(n)
		if err != nil {
			return factor.Scope{}, err
		}
		vars[i] = v
	}

	return factor.NewScope(vars...)
}

// VariableNames returns variable names in declaration order.
func (m *Model) VariableNames() []string { return append([]string(nil), m.varOrder...) }

// FactorNames returns factor names in declaration order.
func (m *Model) FactorNames() []string { return append([]string(nil), m.factorOrder...) }
