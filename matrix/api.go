// SPDX-License-Identifier: MIT
// Package matrix - public API helpers.
//
// Purpose:
//   - Thin constructors with neutral elements (identity).
//   - Tolerance-based comparison for floating-point results, since the
//     product's last bits depend on accumulation order.

package matrix

import "math"

// Default tolerances for AllClose callers that have no better policy.
const (
	DefaultRTol = 1e-9
	DefaultATol = 1e-12
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal directly on the flat buffer.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityFlat returns the row-major buffer of I_n; empty for n == 0.
// Errors: ErrBadShape.
// Complexity: O(n^2).
func IdentityFlat(n int) ([]float64, error) {
	size, err := FlatLen(n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, size)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1.0
	}

	return out, nil
}

// AllClose reports whether a and b have equal length and every pair satisfies
// |a[i]-b[i]| <= atol + rtol*|b[i]|. NaN is never close to anything; an
// infinity is close only to the same infinity.
// Complexity: O(len(a)).
func AllClose(a, b []float64, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !isClose(a[i], b[i], rtol, atol) {
			return false
		}
	}

	return true
}

// isClose is the scalar predicate behind AllClose.
func isClose(x, y, rtol, atol float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if x == y { // covers equal infinities
		return true
	}
	// An infinite operand would make the rtol bound +Inf; only x == y may match it.
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
