// SPDX-License-Identifier: MIT

// Package numkern is a small numeric kernel meant to be driven by a host
// application as a computation engine.
//
// The boundary surface is exactly four pure functions:
//
//	FactorialIter(n)        saturating n! (iterative)
//	FactorialRec(n)         saturating n! (recursive, bit-identical to FactorialIter)
//	MatMul(a, b, n)         row-major n×n product, empty on shape mismatch
//	MakeRandMatrix(n, seed) row-major n×n LCG matrix in [-0.5, 0.5]
//
// None of them returns an error or panics on user input: overflow saturates,
// and a shape mismatch yields an empty slice the caller must check for.
// There is no shared state, so every function is safe for concurrent use.
//
// Under the hood:
//
//	factorial/ - saturating factorials and SatMul
//	lcg/       - the 32-bit linear congruential generator
//	matrix/    - flat kernels, Dense container, sentinel errors
//
//	go get github.com/katalvlaran/numkern
package numkern
