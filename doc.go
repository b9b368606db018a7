// Package lvfactor is a small toolkit for discrete factors: the potential
// functions that probabilistic graphical model inference multiplies, sums and
// slices.
//
// 🚀 What is in here?
//
//	• factor/  — Variable, Scope (mixed-radix indexing) and Factor with
//	             Product, Marginalize/SumOut and Reduce
//	• tabular/ — aligned text tables of (assignment, value) rows
//	• model/   — YAML model files: declared variables and factors
//	• cmd/factorcalc — command-line front end over a model file
//
// ✨ Why?
//
//   - Dense, row-major tables with O(1) stride arithmetic, no per-cell maps
//   - Immutable values: every operation returns a fresh factor, safe to share
//   - Sentinel errors for every precondition; no panics on caller data
//
// Quick example (two variables, last varies fastest):
//
//	X ZZ │ value
//	1  1 │  11
//	1  2 │  22
//	2  1 │  22
//	...
//
// Inference algorithms (elimination orders, junction trees, sampling) are
// deliberately left to callers; this module supplies the algebra they consume.
//
//	go get github.com/katalvlaran/lvfactor/factor
package lvfactor
