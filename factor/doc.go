// Package factor models discrete factors (potential functions) over
// finite-valued random variables, the building blocks of probabilistic
// graphical model inference.
//
// 🚀 What is a factor?
//
//	A factor assigns a real number to every joint assignment of a set of
//	discrete variables. Conditional probability tables, joint distributions
//	and clique potentials are all factors.
//
// ✨ Key types:
//   - Variable — immutable name + finite ordered domain
//   - Scope    — ordered, name-unique variables with a mixed-radix stride table
//   - Factor   — dense []float64 laid out in the scope's row-major order
//
// ⚙️ Algebra:
//
//	f.Product(g)       — combine over Scope().Union(...), broadcasting
//	f.Marginalize(s)   — sum out everything not in s
//	f.SumOut("B")      — sum out named variables
//	f.Reduce(evidence) — condition on fixed values, drop them from the scope
//
// Usage:
//
//	x, _ := factor.NewVariable("X", 1, 2, 3)
//	z, _ := factor.NewVariable("Z", "lo", "hi")
//	sx, _ := factor.NewScope(x)
//	sz, _ := factor.NewScope(z)
//	fx, _ := factor.New(sx, []float64{11, 22, 33})
//	fz, _ := factor.New(sz, []float64{1, 2})
//	joint, _ := fx.Product(fz) // scope (X,Z), values [11 22 22 44 33 66]
//
// Layout: for scope (V0..Vn-1), stride(Vn-1)=1 and
// stride(Vk)=stride(Vk+1)*|Vk+1|; the value of an assignment lives at
// Σ position(Vk)*stride(Vk). The last variable varies fastest.
//
// Resources: a factor's memory is Θ(Π|Vk|). Operations that allocate check
// the result against WithMaxCardinality (default DefaultMaxCardinality) and
// fail with ErrCardinalityLimit rather than allocate unboundedly.
//
// Concurrency: every type is immutable after construction and safe for
// concurrent use without locks.
//
// No normalization is ever performed implicitly; values are arbitrary reals.
package factor
