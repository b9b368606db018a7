// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Value is a single domain token. Any comparable dynamic type is accepted;
// lookups use ==, so int(1) and int64(1) are different values.
type Value = any

// Variable is an immutable named random variable over a finite ordered domain.
// Variables have value semantics: copies share nothing mutable.
type Variable struct {
	name   string
	domain []Value
}

// NewVariable builds a Variable named name over the given domain.
// The domain is copied. Duplicate values are allowed; IndexOf returns the
// first occurrence.
//
// Errors:
//   - ErrEmptyDomain when no values are given.
//   - ErrIncomparableValue when a value cannot be compared with ==.
//
// Complexity: O(len(domain)).
func NewVariable(name string, domain ...Value) (Variable, error) {
	if len(domain) == 0 {
		return Variable{}, variableErrorf("New", name, ErrEmptyDomain)
	}
	for i, v := range domain {
		if v == nil {
			continue
		}
		// Value.Comparable looks inside interface fields, which a static
		// Type.Comparable check would miss.
		if !reflect.ValueOf(v).Comparable() {
			return Variable{}, fmt.Errorf("Variable.New(%s): value %d of type %T: %w", name, i, v, ErrIncomparableValue)
		}
	}
	d := make([]Value, len(domain))
	copy(d, domain)

	return Variable{name: name, domain: d}, nil
}

// Name returns the variable name.
func (v Variable) Name() string { return v.name }

// Domain returns a copy of the domain in declaration order.
func (v Variable) Domain() []Value {
	d := make([]Value, len(v.domain))
	copy(d, v.domain)

	return d
}

// Cardinality returns the domain size.
func (v Variable) Cardinality() int { return len(v.domain) }

// IndexOf returns the position of the first domain value equal to val.
// Returns ErrValueNotFound if val is not in the domain, ErrIncomparableValue
// if val cannot be compared with ==.
// Complexity: O(Cardinality()).
func (v Variable) IndexOf(val Value) (int, error) {
	if val != nil && !reflect.ValueOf(val).Comparable() {
		return 0, fmt.Errorf("Variable.IndexOf(%s, %T): %w", v.name, val, ErrIncomparableValue)
	}
	for i, d := range v.domain {
		if d == val {
			return i, nil
		}
	}

	return 0, fmt.Errorf("Variable.IndexOf(%s, %v): %w", v.name, val, ErrValueNotFound)
}

// ValueAt returns the domain value at position i.
// Returns ErrIndexOutOfRange unless 0 <= i < Cardinality().
func (v Variable) ValueAt(i int) (Value, error) {
	if i < 0 || i >= len(v.domain) {
		return nil, fmt.Errorf("Variable.ValueAt(%s, %d): %w", v.name, i, ErrIndexOutOfRange)
	}

	return v.domain[i], nil
}

// Lookup returns the first domain value whose fmt.Sprint form equals text.
// It lets textual sources (flags, query strings) address typed domains.
func (v Variable) Lookup(text string) (Value, error) {
	for _, d := range v.domain {
		if fmt.Sprint(d) == text {
			return d, nil
		}
	}

	return nil, fmt.Errorf("Variable.Lookup(%s, %q): %w", v.name, text, ErrValueNotFound)
}

// Equal reports whether v and o have the same name and the same domain sequence.
func (v Variable) Equal(o Variable) bool {
	if v.name != o.name || len(v.domain) != len(o.domain) {
		return false
	}
	for i := range v.domain {
		if v.domain[i] != o.domain[i] {
			return false
		}
	}

	return true
}

// Hash returns a stable 64-bit hash of the name and the typed domain sequence.
// Equal variables hash equal. The value does not depend on process state.
func (v Variable) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(v.name)
	for _, val := range v.domain {
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(hashToken(val))
	}

	return d.Sum64()
}

// hashToken renders val as "%T:%v" with -0 folded onto +0, since the two
// compare equal under ==.
func hashToken(val Value) string {
	switch x := val.(type) {
	case float64:
		if x == 0 {
			x = 0
		}
		val = x
	case float32:
		if x == 0 {
			x = 0
		}
		val = x
	}

	return fmt.Sprintf("%T:%v", val, val)
}

// String renders the variable as Name{v1,v2,...}.
func (v Variable) String() string {
	var b strings.Builder
	b.WriteString(v.name)
	b.WriteByte('{')
	for i, d := range v.domain {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, d)
	}
	b.WriteByte('}')

	return b.String()
}
