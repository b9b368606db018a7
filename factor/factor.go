// SPDX-License-Identifier: MIT

// Package factor - Factor: dense potential over a Scope & its algebra.
//
// Purpose:
//   - Store one float64 per joint assignment, in the Scope's row-major order.
//   - Provide the three operations inference is built from: Product,
//     Marginalize (sum out), Reduce (condition on evidence).
//
// Guarantees:
//   - Factors are immutable; every operation allocates a fresh result once, at
//     its final length, and never mutates its inputs.
//   - Errors are detected before any output is produced.
//
// Complexity quicksheet (n = result cardinality, N = source cardinality):
//   - Product: O(n); Marginalize: O(N); Reduce: O(n); ValueAt: O(len(scope)).
package factor

import (
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxValueAt     = "ValueAt"
	ctxProduct     = "Product"
	ctxMarginalize = "Marginalize"
	ctxSumOut      = "SumOut"
	ctxReduce      = "Reduce"
)

// Factor is a dense table mapping every joint assignment of its scope to a real.
// values[i] belongs to scope.AssignmentAt(i).
type Factor struct {
	scope  Scope
	values []float64 // len == scope.Cardinality()
}

// New builds a Factor over scope from values laid out in the scope's linear order.
// values is copied.
//
// Errors:
//   - ErrLengthMismatch when len(values) != scope.Cardinality().
//   - ErrCardinalityLimit when the scope exceeds the configured ceiling.
//   - ErrNaNInf for non-finite values under WithValidateNaNInf(true).
func New(scope Scope, values []float64, opts ...Option) (*Factor, error) {
	cfg := gatherOptions(opts...)
	n := scope.Cardinality()
	if len(values) != n {
		return nil, fmt.Errorf("Factor.%s: got %d values for cardinality %d: %w", ctxNew, len(values), n, ErrLengthMismatch)
	}
	if err := cfg.checkCardinality(n); err != nil {
		return nil, factorErrorf(ctxNew, err)
	}
	if err := cfg.checkFinite(values); err != nil {
		return nil, factorErrorf(ctxNew, err)
	}
	buf := make([]float64, n)
	copy(buf, values)

	return &Factor{scope: scope, values: buf}, nil
}

// Unit returns the factor over the empty scope with value 1, the neutral
// element of Product.
func Unit() *Factor {
	return &Factor{values: []float64{1}}
}

// usable reports whether f came from New, Unit or an operation. A nil or
// zero-value Factor holds no cells and cannot take part in the algebra.
func (f *Factor) usable() bool {
	return f != nil && len(f.values) == f.scope.Cardinality()
}

// Scope returns the factor's scope.
func (f *Factor) Scope() Scope { return f.scope }

// Values returns a copy of the values in linear order.
func (f *Factor) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)

	return out
}

// Len returns the number of stored values (the scope cardinality).
func (f *Factor) Len() int { return len(f.values) }

// ValueAt returns the value for assignment a. Extra keys in a are ignored.
// Errors: ErrNilFactor, ErrMissingAssignment, ErrValueNotFound.
func (f *Factor) ValueAt(a Assignment) (float64, error) {
	if !f.usable() {
		return 0, factorErrorf(ctxValueAt, ErrNilFactor)
	}
	i, err := f.scope.LinearIndex(a)
	if err != nil {
		return 0, factorErrorf(ctxValueAt, err)
	}

	return f.values[i], nil
}

// At returns the value at linear index i.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
func (f *Factor) At(i int) (float64, error) {
	if i < 0 || i >= len(f.values) {
		return 0, fmt.Errorf("Factor.At(%d): %w", i, ErrIndexOutOfRange)
	}

	return f.values[i], nil
}

// Equal reports whether f and o have equal scopes (order-sensitive) and
// identical values.
func (f *Factor) Equal(o *Factor) bool {
	if f == nil || o == nil {
		return f == o
	}

	return f.scope.Equal(o.scope) && slices.Equal(f.values, o.values)
}

// ApproxEqual reports whether f and o have equal scopes and pairwise values
// with |a-b| <= max(tol*max(|a|,|b|), tol). Meant for tests over float results.
func (f *Factor) ApproxEqual(o *Factor, tol float64) bool {
	if f == nil || o == nil {
		return f == o
	}
	if !f.scope.Equal(o.scope) {
		return false
	}
	for i, a := range f.values {
		if !isClose(a, o.values[i], tol) {
			return false
		}
	}

	return true
}

// isClose is the symmetric relative/absolute closeness test used by ApproxEqual.
func isClose(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)

	return diff <= math.Max(tol*math.Max(math.Abs(a), math.Abs(b)), tol)
}

// Product multiplies f by o. The result scope is f.Scope().Union(o.Scope()),
// and each result cell is the product of the operand cells its assignment
// projects onto; an operand is broadcast over the variables it lacks.
//
// Implementation:
//   - Stage 1: check shared names name equal variables.
//   - Stage 2: build the union scope and check the cardinality ceiling.
//   - Stage 3: walk the union index space once with both operands' strides
//     projected onto it.
//
// Errors: ErrNilFactor, ErrConflictingVariable, ErrCardinalityOverflow,
// ErrCardinalityLimit.
func (f *Factor) Product(o *Factor, opts ...Option) (*Factor, error) {
	if !f.usable() || !o.usable() {
		return nil, factorErrorf(ctxProduct, ErrNilFactor)
	}
	cfg := gatherOptions(opts...)
	for _, v := range o.scope.vars {
		if w, ok := f.scope.Variable(v.name); ok && !w.Equal(v) {
			return nil, fmt.Errorf("Factor.%s(%s): %w", ctxProduct, v.name, ErrConflictingVariable)
		}
	}
	rs, err := f.scope.Union(o.scope)
	if err != nil {
		return nil, factorErrorf(ctxProduct, err)
	}
	n := rs.Cardinality()
	if err = cfg.checkCardinality(n); err != nil {
		return nil, factorErrorf(ctxProduct, err)
	}

	out := make([]float64, n)
	cur := newCursor(rs.cardinalities(), nil, f.scope.stridesOnto(rs), o.scope.stridesOnto(rs))
	for i := range out {
		out[i] = f.values[cur.off[0]] * o.values[cur.off[1]]
		cur.next()
	}

	return &Factor{scope: rs, values: out}, nil
}

// ProductAll folds Product over fs from the left, starting at Unit().
// An empty call returns Unit().
func ProductAll(fs []*Factor, opts ...Option) (*Factor, error) {
	acc := Unit()
	for _, g := range fs {
		next, err := acc.Product(g, opts...)
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc, nil
}

// Marginalize sums out every variable of f that is not in target and returns
// a factor over target, laid out in target's own order. target must be a
// subset of f's variables; when it holds all of them the values are only
// re-ordered.
//
// Errors: ErrNilFactor, ErrUnknownVariable, ErrConflictingVariable.
func (f *Factor) Marginalize(target Scope) (*Factor, error) {
	if !f.usable() {
		return nil, factorErrorf(ctxMarginalize, ErrNilFactor)
	}
	for _, v := range target.vars {
		w, ok := f.scope.Variable(v.name)
		if !ok {
			return nil, fmt.Errorf("Factor.%s(%s): %w", ctxMarginalize, v.name, ErrUnknownVariable)
		}
		if !w.Equal(v) {
			return nil, fmt.Errorf("Factor.%s(%s): %w", ctxMarginalize, v.name, ErrConflictingVariable)
		}
	}

	// Scatter-add: walk the source space; the target offset ignores summed-out axes.
	out := make([]float64, target.Cardinality())
	cur := newCursor(f.scope.cardinalities(), nil, target.stridesOnto(f.scope))
	for _, v := range f.values {
		out[cur.off[0]] += v
		cur.next()
	}

	return &Factor{scope: target, values: out}, nil
}

// SumOut marginalizes the named variables away, keeping the rest in f's order.
// Errors: ErrNilFactor, ErrUnknownVariable.
func (f *Factor) SumOut(names ...string) (*Factor, error) {
	if !f.usable() {
		return nil, factorErrorf(ctxSumOut, ErrNilFactor)
	}
	for _, n := range names {
		if !f.scope.Contains(n) {
			return nil, fmt.Errorf("Factor.%s(%s): %w", ctxSumOut, n, ErrUnknownVariable)
		}
	}

	return f.Marginalize(f.scope.Without(names...))
}

// Reduce conditions f on evidence: each named variable is fixed to its value
// and dropped from the scope; the remaining variables keep f's order. The
// result is a slice of f's table, not a sum.
//
// Errors: ErrNilFactor, ErrUnknownVariable, ErrValueNotFound. With several
// bad keys the first in sorted order is reported.
func (f *Factor) Reduce(evidence Assignment) (*Factor, error) {
	if !f.usable() {
		return nil, factorErrorf(ctxReduce, ErrNilFactor)
	}
	names := slices.Sorted(maps.Keys(evidence))
	base := 0
	for _, n := range names {
		k, ok := f.scope.pos[n]
		if !ok {
			return nil, fmt.Errorf("Factor.%s(%s): %w", ctxReduce, n, ErrUnknownVariable)
		}
		p, err := f.scope.vars[k].IndexOf(evidence[n])
		if err != nil {
			return nil, factorErrorf(ctxReduce, err)
		}
		base += p * f.scope.strides[k]
	}

	// Gather: walk the reduced space; the source offset starts at the evidence cell.
	rs := f.scope.Without(names...)
	out := make([]float64, rs.Cardinality())
	cur := newCursor(rs.cardinalities(), []int{base}, f.scope.stridesOnto(rs))
	for j := range out {
		out[j] = f.values[cur.off[0]]
		cur.next()
	}

	return &Factor{scope: rs, values: out}, nil
}

// All yields (AssignmentAt(i), value_i) for every i in linear order.
// Each yielded Assignment is freshly allocated and owned by the caller.
func (f *Factor) All() iter.Seq2[Assignment, float64] {
	return func(yield func(Assignment, float64) bool) {
		for i, v := range f.values {
			a, err := f.scope.AssignmentAt(i)
			if err != nil {
				return
			}
			if !yield(a, v) {
				return
			}
		}
	}
}

// String renders the factor as Factor(X,Y)[v0 v1 ...].
func (f *Factor) String() string {
	var b strings.Builder
	b.WriteString("Factor(")
	b.WriteString(strings.Join(f.scope.Names(), ","))
	b.WriteString(")[")
	for i, v := range f.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')

	return b.String()
}
