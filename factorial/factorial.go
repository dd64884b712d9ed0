// SPDX-License-Identifier: MIT

// Package factorial computes n! into a uint64 with saturating overflow.
//
// Policy:
//   - Saturation: once the true product exceeds math.MaxUint64 the result
//     is clamped to math.MaxUint64. It never wraps and never panics.
//   - Iter and Rec are two computations of the same function and MUST agree
//     bit for bit on every input.
//
// Determinism:
//   - Pure functions; no shared state; safe for concurrent use.
package factorial

import (
	"math"
	"math/bits"
)

// MaxExact is the largest n whose factorial fits in a uint64 (20! ≈ 2.43e18).
// For every n > MaxExact both Iter and Rec return math.MaxUint64.
const MaxExact = 20

// one is the multiplicative identity used to seed accumulators.
const one uint64 = 1

// SatMul returns a*b, clamped to math.MaxUint64 on overflow.
// Implementation:
//   - Stage 1: full 128-bit product via bits.Mul64.
//   - Stage 2: any non-zero high word means the product left the uint64 range.
//
// Complexity: O(1).
func SatMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}

// Iter computes n! by multiplying 2..n into an accumulator seeded at 1.
// Iter(0) == Iter(1) == 1.
//
// The loop counter is 64-bit so that n == math.MaxUint32 terminates.
// Complexity: O(n) time, O(1) space.
func Iter(n uint32) uint64 {
	acc := one
	limit := uint64(n)
	for i := uint64(2); i <= limit; i++ {
		acc = SatMul(acc, i)
	}

	return acc
}

// Rec computes n! by recursive descent: 1 for n <= 1, otherwise
// SatMul(n, Rec(n-1)).
//
// Depth guard: for n > MaxExact the product is already saturated and
// saturation is absorbing (MaxUint64 * k stays MaxUint64 for k >= 1), so Rec
// returns math.MaxUint64 without descending. Recursion depth is therefore
// bounded by MaxExact+1 for any input.
//
// Complexity: O(min(n, MaxExact)) time and stack.
func Rec(n uint32) uint64 {
	if n <= 1 {
		return one
	}
	if n > MaxExact {
		return math.MaxUint64
	}

	return SatMul(uint64(n), Rec(n-1))
}
