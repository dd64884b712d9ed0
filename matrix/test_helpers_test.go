// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and a reference kernel.
//   • Keep all data finite unless a test is explicitly about NaN/Inf.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkern/matrix"
)

// Default tolerances for comparing kernels with different accumulation orders.
const (
	rtol = 1e-12
	atol = 1e-12
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an n×n *Dense from a row-major flat slice.
// Fatal if len(vals) != n*n.
func NewFilledDense(tb testing.TB, n int, vals []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(n, n, vals)
	if err != nil {
		tb.Fatalf("NewDenseFrom(%d): %v", n, err)
	}

	return m
}

// randFlat FILLS a fresh n×n buffer with U(-1,1) values by seed using
// math/rand, independent of the LCG under test.
func randFlat(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n*n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1 // [-1,1)
	}

	return out
}

// naiveMulIJK is the textbook i→j→k product used as an oracle for MulFlat.
// Its summation order differs from the kernel, so compare with AllClose.
func naiveMulIJK(a, b []float64, n int) []float64 {
	c := make([]float64, n*n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum := 0.0
			for k = 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			c[i*n+j] = sum
		}
	}

	return c
}
