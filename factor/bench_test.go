// Package factor_test provides benchmarks for the factor algebra,
// using deterministic random values.
package factor_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvfactor/factor"
)

// benchVars are the variable counts to benchmark (each variable has 4 values).
var benchVars = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkF *factor.Factor
	sinkI int
)

// benchChain returns factors over (V0..Vn-1) and (Vn/2..Vn+n/2-1), overlapping by half.
func benchChain(b *testing.B, n int) (*factor.Factor, *factor.Factor) {
	b.Helper()
	vars := make([]factor.Variable, n+n/2)
	for i := range vars {
		vars[i] = mustVariable(b, fmt.Sprintf("V%d", i), 0, 1, 2, 3)
	}
	rng := rand.New(rand.NewSource(1337))
	f := randomFactor(b, rng, mustScope(b, vars[:n]...))
	g := randomFactor(b, rng, mustScope(b, vars[n/2:]...))

	return f, g
}

func BenchmarkProduct(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchVars {
		b.Run(fmt.Sprintf("vars=%d", n), func(b *testing.B) {
			f, g := benchChain(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := f.Product(g)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = p
			}
		})
	}
}

func BenchmarkMarginalize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchVars {
		b.Run(fmt.Sprintf("vars=%d", n), func(b *testing.B) {
			f, _ := benchChain(b, n)
			names := f.Scope().Names()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := f.SumOut(names[:n/2]...)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = m
			}
		})
	}
}

func BenchmarkReduce(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchVars {
		b.Run(fmt.Sprintf("vars=%d", n), func(b *testing.B) {
			f, _ := benchChain(b, n)
			evidence := factor.Assignment{"V0": 2, "V1": 1}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := f.Reduce(evidence)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = r
			}
		})
	}
}

func BenchmarkLinearIndex(b *testing.B) {
	b.ReportAllocs()
	f, _ := benchChain(b, 8)
	asg, err := f.Scope().AssignmentAt(f.Len() - 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx, err := f.Scope().LinearIndex(asg)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = idx
	}
}
