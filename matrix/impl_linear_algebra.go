// SPDX-License-Identifier: MIT
// Package matrix provides the square multiplication kernel over flat
// row-major buffers and its Dense wrapper.
//
// Purpose:
//   - Declare the canonical product kernel used by every entry point.
//   - Define operation tags for uniform error wrapping.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul    = "Mul"
	opRandom = "Random"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulFlat computes C = A × B for two n×n matrices stored as flat row-major slices.
// Implementation:
//   - Stage 1: Validate len(a) == len(b) == n*n; nothing is computed on failure.
//   - Stage 2: Allocate a zeroed result of length n*n.
//   - Stage 3: Accumulate in i→k→j order: A[i,k] is hoisted once per (i,k) and
//     added into every C[i,j] across the inner j loop.
//
// Behavior highlights:
//   - Inner loop walks B and C contiguously (row-major friendly).
//   - No zero-skipping: 0*Inf and 0*NaN propagate as IEEE-754 defines.
//   - Inputs are never mutated.
//
// Inputs:
//   - a, b: row-major buffers of length n*n.
//   - n: matrix order (n >= 0).
//
// Returns:
//   - []float64: fresh row-major product, length n*n. For n == 0 this is an
//     empty, non-nil slice and the call is a success.
//   - error: nil, or ErrBadShape / ErrDimensionMismatch wrapped with "Mul".
//     The slice is nil whenever error is non-nil.
//
// Determinism:
//   - Fixed accumulation order i→k→j; bitwise reproducible on a given platform.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func MulFlat(a, b []float64, n int) ([]float64, error) {
	// Validate both operands before allocating anything
	if err := ValidateFlatLen(a, n); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("A: %w", err))
	}
	if err := ValidateFlatLen(b, n); err != nil {
		return nil, matrixErrorf(opMul, fmt.Errorf("B: %w", err))
	}

	// Allocate zeroed result
	c := make([]float64, n*n)

	var (
		i, k, j                            int // loop iterators
		rowOffsetA, rowOffsetB, rowOffsetC int
		aik                                float64
	)
	// a layout: i*n + k; b layout: k*n + j; c layout: i*n + j
	for i = 0; i < n; i++ {
		rowOffsetA = i * n
		rowOffsetC = i * n
		for k = 0; k < n; k++ {
			aik = a[rowOffsetA+k] // hoisted scalar
			rowOffsetB = k * n
			for j = 0; j < n; j++ {
				c[rowOffsetC+j] += aik * b[rowOffsetB+j]
			}
		}
	}

	return c, nil
}

// Mul computes the product of two square Dense matrices of equal order.
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil → square → same order).
//   - Stage 2: delegate to MulFlat on the backing slices.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (all wrapped with "Mul").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.Rows()
	c, err := MulFlat(a.data, b.data, n)
	if err != nil {
		return nil, err
	}

	return wrapDense(n, c), nil
}
