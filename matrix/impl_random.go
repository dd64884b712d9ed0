// SPDX-License-Identifier: MIT
// Package matrix - reproducible pseudo-random square matrices.
//
// Policy:
//   - Values come from lcg.Generator.Centered, one draw per cell in row-major
//     order, so (n, seed) fully determines the output.
//   - The generator is created per call; nothing is shared between calls.

package matrix

import "github.com/katalvlaran/numkern/lcg"

// RandFlat returns an n×n row-major buffer of centered LCG values in [-0.5, 0.5].
// Implementation:
//   - Stage 1: FlatLen(n) guards negative or overflowing orders.
//   - Stage 2: seed a fresh generator (advanced once from the raw seed).
//   - Stage 3: fill cells 0..n*n-1, one state step per cell.
//
// Returns:
//   - []float64 of length n*n (empty, non-nil for n == 0).
//   - error: ErrBadShape wrapped with "Random".
//
// Determinism:
//   - Identical (n, seed) always yields an identical sequence.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func RandFlat(n int, seed uint32) ([]float64, error) {
	size, err := FlatLen(n)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}

	out := make([]float64, size)
	g := lcg.New(seed)
	for i := range out {
		out[i] = g.Centered()
	}

	return out, nil
}

// Random returns an n×n Dense filled by RandFlat.
// Errors: ErrInvalidDimensions for n <= 0 (Dense has no empty shape), ErrBadShape.
// Complexity: O(n²).
func Random(n int, seed uint32) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opRandom, ErrInvalidDimensions)
	}
	buf, err := RandFlat(n, seed)
	if err != nil {
		return nil, err
	}

	return wrapDense(n, buf), nil
}
