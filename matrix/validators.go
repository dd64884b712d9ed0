// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square → SameOrder).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FlatLen returns n*n, the element count of an n×n row-major buffer.
//
// Errors: ErrBadShape if n < 0 or n*n overflows int.
// Complexity: O(1).
func FlatLen(n int) (int, error) {
	if n < 0 {
		return 0, validatorErrorf("FlatLen", ErrBadShape)
	}
	if n > 0 && n > math.MaxInt/n {
		return 0, validatorErrorf("FlatLen", ErrBadShape)
	}

	return n * n, nil
}

// ValidateFlatLen ensures a flat buffer holds exactly n*n elements.
// A nil slice is accepted for n == 0 (empty is empty).
//
// Errors: ErrBadShape (invalid n), ErrDimensionMismatch (length differs).
// Complexity: O(1).
func ValidateFlatLen(x []float64, n int) error {
	want, err := FlatLen(n)
	if err != nil {
		return err
	}
	if len(x) != want {
		return validatorErrorf("ValidateFlatLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks that a and b are square matrices of the same order.
// Sequence: ValidateSquare(a) → ValidateSquare(b) → order check.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateSquare(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
