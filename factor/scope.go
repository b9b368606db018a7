// SPDX-License-Identifier: MIT

// Package factor - Scope: ordered variable set & mixed-radix indexing.
//
// Purpose:
//   - Fix a canonical linear order over the Cartesian product of member domains.
//   - Translate between a named Assignment and a flat index in O(len(scope)).
//
// Layout:
//   - Row-major over variables in scope order: the last variable varies fastest.
//   - strides[k] = product of cardinalities of variables k+1..n-1 (right fold, seed 1).
//   - offset(assignment) = Σ IndexOf(assignment[var_k]) * strides[k].
//
// Complexity quicksheet:
//   - NewScope: O(n); LinearIndex/AssignmentAt: O(n + Σ|domain|); Union/Intersection: O(n+m).
package factor

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Assignment maps variable names to domain values. Extra keys are ignored by
// every reader in this package.
type Assignment map[string]Value

// Scope is an ordered, name-unique collection of variables with a derived
// stride table. The zero Scope is the empty scope (cardinality 1).
// Scope is immutable; methods returning slices return copies.
type Scope struct {
	vars    []Variable     // member variables in scope order
	strides []int          // parallel to vars
	card    int            // product of member cardinalities (0 means "empty scope")
	pos     map[string]int // name -> position in vars
}

// Flatten concatenates variable groups one level deep, preserving order.
// It lets callers assemble a scope from several slices:
//
//	s, err := NewScope(Flatten(parents, []Variable{child})...)
func Flatten(groups ...[]Variable) []Variable {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Variable, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

// NewScope builds a Scope over vars in the given order.
//
// Implementation:
//   - Stage 1: reject duplicate names.
//   - Stage 2: right fold over cardinalities (seed 1) to fill strides,
//     checking for int overflow.
//
// Errors:
//   - ErrDuplicateVariableName when two variables share a name.
//   - ErrCardinalityOverflow when the joint cardinality does not fit in int.
func NewScope(vars ...Variable) (Scope, error) {
	pos := make(map[string]int, len(vars))
	own := make([]Variable, len(vars))
	for i, v := range vars {
		if _, dup := pos[v.name]; dup {
			return Scope{}, scopeErrorf("New", v.name, ErrDuplicateVariableName)
		}
		pos[v.name] = i
		own[i] = v
	}

	strides := make([]int, len(own))
	acc := 1
	for i := len(own) - 1; i >= 0; i-- {
		strides[i] = acc
		c := own[i].Cardinality()
		if c == 0 {
			// Only reachable through a zero Variable{}; treat it like an empty domain.
			return Scope{}, scopeErrorf("New", own[i].name, ErrEmptyDomain)
		}
		if acc > math.MaxInt/c {
			return Scope{}, scopeErrorf("New", own[i].name, ErrCardinalityOverflow)
		}
		acc *= c
	}

	return Scope{vars: own, strides: strides, card: acc, pos: pos}, nil
}

// Len returns the number of variables.
func (s Scope) Len() int { return len(s.vars) }

// Variables returns a copy of the member variables in scope order.
func (s Scope) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)

	return out
}

// Names returns member names in scope order.
func (s Scope) Names() []string {
	out := make([]string, len(s.vars))
	for i, v := range s.vars {
		out[i] = v.name
	}

	return out
}

// Variable returns the member named name.
func (s Scope) Variable(name string) (Variable, bool) {
	i, ok := s.pos[name]
	if !ok {
		return Variable{}, false
	}

	return s.vars[i], true
}

// Contains reports whether a member is named name.
func (s Scope) Contains(name string) bool {
	_, ok := s.pos[name]

	return ok
}

// Cardinality returns the number of joint assignments (1 for the empty scope).
func (s Scope) Cardinality() int {
	if len(s.vars) == 0 {
		return 1
	}

	return s.card
}

// Strides returns a copy of the stride table, parallel to Variables().
func (s Scope) Strides() []int {
	out := make([]int, len(s.strides))
	copy(out, s.strides)

	return out
}

// LinearIndex encodes a into a flat index: Σ IndexOf(a[name_k]) * strides[k].
//
// Errors:
//   - ErrMissingAssignment when a member name is absent from a.
//   - ErrValueNotFound when a value is outside its variable's domain.
func (s Scope) LinearIndex(a Assignment) (int, error) {
	idx := 0
	for k, v := range s.vars {
		val, ok := a[v.name]
		if !ok {
			return 0, scopeErrorf("LinearIndex", v.name, ErrMissingAssignment)
		}
		p, err := v.IndexOf(val)
		if err != nil {
			return 0, scopeErrorf("LinearIndex", v.name, err)
		}
		idx += p * s.strides[k]
	}

	return idx, nil
}

// AssignmentAt decodes a flat index back into an Assignment (inverse of LinearIndex).
// Variables are visited in scope order: position = i / stride, i %= stride.
// Returns ErrIndexOutOfRange unless 0 <= i < Cardinality().
func (s Scope) AssignmentAt(i int) (Assignment, error) {
	if i < 0 || i >= s.Cardinality() {
		return nil, fmt.Errorf("Scope.AssignmentAt(%d): %w", i, ErrIndexOutOfRange)
	}
	a := make(Assignment, len(s.vars))
	for k, v := range s.vars {
		a[v.name] = v.domain[i/s.strides[k]]
		i %= s.strides[k]
	}

	return a, nil
}

// Union returns s's variables in order followed by o's variables whose names
// are not in s, in o's order. Membership is by name; for shared names the
// variable from s is kept.
//
// Union is associative, and commutative only up to Equiv.
// Errors: ErrCardinalityOverflow.
func (s Scope) Union(o Scope) (Scope, error) {
	vars := make([]Variable, 0, len(s.vars)+len(o.vars))
	vars = append(vars, s.vars...)
	for _, v := range o.vars {
		if !s.Contains(v.name) {
			vars = append(vars, v)
		}
	}

	return NewScope(vars...)
}

// Intersection returns s's variables whose names are also in o, in s's order.
// Associative, and commutative only up to Equiv.
func (s Scope) Intersection(o Scope) Scope {
	vars := make([]Variable, 0, len(s.vars))
	for _, v := range s.vars {
		if o.Contains(v.name) {
			vars = append(vars, v)
		}
	}

	return s.subset(vars)
}

// Without returns s minus the named variables, relative order kept.
// Names not in s are ignored.
func (s Scope) Without(names ...string) Scope {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	vars := make([]Variable, 0, len(s.vars))
	for _, v := range s.vars {
		if _, gone := drop[v.name]; !gone {
			vars = append(vars, v)
		}
	}

	return s.subset(vars)
}

// subset builds a Scope from vars drawn from s. Names are unique and the
// cardinality divides s's, so construction cannot fail.
func (s Scope) subset(vars []Variable) Scope {
	out, err := NewScope(vars...)
	if err != nil {
		panic(fmt.Sprintf("factor: subset of a valid scope failed: %v", err))
	}

	return out
}

// Equal reports whether s and o hold equal variables in the same order.
func (s Scope) Equal(o Scope) bool {
	if len(s.vars) != len(o.vars) {
		return false
	}
	for i := range s.vars {
		if !s.vars[i].Equal(o.vars[i]) {
			return false
		}
	}

	return true
}

// Equiv reports whether s and o hold the same set of variables, ignoring order.
func (s Scope) Equiv(o Scope) bool {
	if len(s.vars) != len(o.vars) {
		return false
	}
	for _, v := range s.vars {
		w, ok := o.Variable(v.name)
		if !ok || !v.Equal(w) {
			return false
		}
	}

	return true
}

// Hash returns a stable hash of the ordered variable sequence. Scopes that are
// Equal hash equal; Equiv scopes in different orders generally do not.
func (s Scope) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range s.vars {
		binary.LittleEndian.PutUint64(buf[:], v.Hash())
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// String renders the scope as (X{1,2},Y{a,b}).
func (s Scope) String() string {
	parts := make([]string, len(s.vars))
	for i, v := range s.vars {
		parts[i] = v.String()
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// stridesOnto projects s's strides onto the axes of target: element k is the
// stride in s of target's k-th variable, or 0 when s lacks it. Walking
// target's index space with these strides yields the matching offset in s.
func (s Scope) stridesOnto(target Scope) []int {
	out := make([]int, len(target.vars))
	for k, v := range target.vars {
		if i, ok := s.pos[v.name]; ok {
			out[k] = s.strides[i]
		}
	}

	return out
}

// cardinalities returns member cardinalities in scope order.
func (s Scope) cardinalities() []int {
	out := make([]int, len(s.vars))
	for i, v := range s.vars {
		out[i] = len(v.domain)
	}

	return out
}
