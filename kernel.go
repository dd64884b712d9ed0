// SPDX-License-Identifier: MIT

package numkern

import (
	"github.com/katalvlaran/numkern/factorial"
	"github.com/katalvlaran/numkern/matrix"
)

// FactorialIter returns n! computed iteratively, saturating at math.MaxUint64.
func FactorialIter(n uint32) uint64 { return factorial.Iter(n) }

// FactorialRec returns n! computed recursively, saturating at math.MaxUint64.
// It always agrees with FactorialIter.
func FactorialRec(n uint32) uint64 { return factorial.Rec(n) }

// MatMul returns the row-major product of two n×n row-major matrices.
//
// If len(a) or len(b) is not n*n (or n is negative), MatMul returns an empty
// slice and computes nothing. n == 0 also returns an empty slice, as a
// success; use matrix.MulFlat to tell the two cases apart.
func MatMul(a, b []float64, n int) []float64 {
	c, err := matrix.MulFlat(a, b, n)
	if err != nil {
		return []float64{}
	}

	return c
}

// MakeRandMatrix returns an n×n row-major matrix of LCG values in [-0.5, 0.5].
// Identical (n, seed) always yields an identical result. A negative n yields
// an empty slice.
func MakeRandMatrix(n int, seed uint32) []float64 {
	out, err := matrix.RandFlat(n, seed)
	if err != nil {
		return []float64{}
	}

	return out
}
