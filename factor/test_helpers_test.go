// SPDX-License-Identifier: MIT
// Package factor_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (variables, scopes, factors).
//   - Naive reference implementations of the algebra built ONLY from the public
//     encode/decode surface (AssignmentAt / LinearIndex / ValueAt), so the
//     stride-walking fast paths can be checked against an independent route.

package factor_test

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvfactor/factor"
)

// mustVariable builds a Variable or fails the test.
func mustVariable(t testing.TB, name string, domain ...factor.Value) factor.Variable {
	t.Helper()
	v, err := factor.NewVariable(name, domain...)
	if err != nil {
		t.Fatalf("NewVariable(%s): %v", name, err)
	}

	return v
}

// mustScope builds a Scope or fails the test.
func mustScope(t testing.TB, vars ...factor.Variable) factor.Scope {
	t.Helper()
	s, err := factor.NewScope(vars...)
	if err != nil {
		t.Fatalf("NewScope: %v", err)
	}

	return s
}

// mustFactor builds a Factor or fails the test.
func mustFactor(t testing.TB, s factor.Scope, values ...float64) *factor.Factor {
	t.Helper()
	f, err := factor.New(s, values)
	if err != nil {
		t.Fatalf("New(%v): %v", s, err)
	}

	return f
}

// approx compares float64 slices with an absolute margin for hand-written tables.
func approx() cmp.Option {
	return cmpopts.EquateApprox(0, 1e-12)
}

// seq returns [start, start+1, ..., start+n-1] as float64.
func seq(start, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(start + i)
	}

	return out
}

// f3Fixture returns Aa{0,1}, B{0,1}, C{0,1} and F3 over (Aa,B,C) with values 1..8,
// so F3(a,b,c) = 1 + 4a + 2b + c.
func f3Fixture(t testing.TB) (aa, b, c factor.Variable, f3 *factor.Factor) {
	t.Helper()
	aa = mustVariable(t, "Aa", 0, 1)
	b = mustVariable(t, "B", 0, 1)
	c = mustVariable(t, "C", 0, 1)
	f3 = mustFactor(t, mustScope(t, aa, b, c), seq(1, 8)...)

	return aa, b, c, f3
}

// naiveProduct multiplies through decode/encode of every union assignment.
func naiveProduct(t testing.TB, a, b *factor.Factor) *factor.Factor {
	t.Helper()
	rs, err := a.Scope().Union(b.Scope())
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	out := make([]float64, rs.Cardinality())
	for i := range out {
		asg, err := rs.AssignmentAt(i)
		if err != nil {
			t.Fatalf("AssignmentAt(%d): %v", i, err)
		}
		va, err := a.ValueAt(asg)
		if err != nil {
			t.Fatalf("ValueAt: %v", err)
		}
		vb, err := b.ValueAt(asg)
		if err != nil {
			t.Fatalf("ValueAt: %v", err)
		}
		out[i] = va * vb
	}

	return mustFactor(t, rs, out...)
}

// naiveMarginal scatter-adds every source cell into target via LinearIndex.
func naiveMarginal(t testing.TB, f *factor.Factor, target factor.Scope) *factor.Factor {
	t.Helper()
	out := make([]float64, target.Cardinality())
	for i, v := range f.Values() {
		asg, err := f.Scope().AssignmentAt(i)
		if err != nil {
			t.Fatalf("AssignmentAt(%d): %v", i, err)
		}
		j, err := target.LinearIndex(asg)
		if err != nil {
			t.Fatalf("LinearIndex: %v", err)
		}
		out[j] += v
	}

	return mustFactor(t, target, out...)
}

// naiveReduce gathers each reduced cell by merging evidence into its assignment.
func naiveReduce(t testing.TB, f *factor.Factor, evidence factor.Assignment) *factor.Factor {
	t.Helper()
	rs := f.Scope().Without(slices.Collect(maps.Keys(evidence))...)
	out := make([]float64, rs.Cardinality())
	for j := range out {
		asg, err := rs.AssignmentAt(j)
		if err != nil {
			t.Fatalf("AssignmentAt(%d): %v", j, err)
		}
		maps.Copy(asg, evidence)
		v, err := f.ValueAt(asg)
		if err != nil {
			t.Fatalf("ValueAt: %v", err)
		}
		out[j] = v
	}

	return mustFactor(t, rs, out...)
}

// variablePool returns n variables V0..Vn-1 with cardinalities cycling 2,3,1,...
// and mixed domain value types.
func variablePool(t testing.TB, n int) []factor.Variable {
	t.Helper()
	pool := make([]factor.Variable, n)
	for i := range pool {
		switch i % 3 {
		case 0:
			pool[i] = mustVariable(t, fmt.Sprintf("V%d", i), "lo", "hi")
		case 1:
			pool[i] = mustVariable(t, fmt.Sprintf("V%d", i), 1, 2, 3)
		default:
			pool[i] = mustVariable(t, fmt.Sprintf("V%d", i), true)
		}
	}

	return pool
}

// randomScope draws a random subset of pool in random order.
func randomScope(t testing.TB, rng *rand.Rand, pool []factor.Variable) factor.Scope {
	t.Helper()
	var vars []factor.Variable
	for _, i := range rng.Perm(len(pool)) {
		if rng.Intn(2) == 0 {
			vars = append(vars, pool[i])
		}
	}

	return mustScope(t, vars...)
}

// randomFactor fills s with deterministic pseudo-random values in [0,10).
func randomFactor(t testing.TB, rng *rand.Rand, s factor.Scope) *factor.Factor {
	t.Helper()
	vals := make([]float64, s.Cardinality())
	for i := range vals {
		vals[i] = rng.Float64() * 10
	}

	return mustFactor(t, s, vals...)
}
