// SPDX-License-Identifier: MIT

// Package lcg implements the 32-bit linear congruential generator used to
// fill reproducible random matrices.
//
// The recurrence is x = x*Multiplier + Increment (mod 2^32). The modulus is
// implicit: uint32 arithmetic in Go wraps, and the wraparound IS the
// modulus. This is the opposite overflow policy of package factorial, which
// saturates; keep the two apart.
//
// A Generator is not safe for concurrent use. Give every goroutine (or every
// call) its own Generator; construction is a single multiply-add.
package lcg

import "math"

// Numerical Recipes constants. Full period 2^32: Increment is odd and
// Multiplier-1 is divisible by 4, so every uint32 state is visited once per cycle.
const (
	Multiplier uint32 = 1664525
	Increment  uint32 = 1013904223
)

// stateMax is the divisor that maps a state onto [0, 1].
// It is 2^32-1, not 2^32: a state of math.MaxUint32 maps to exactly 1.
const stateMax = float64(math.MaxUint32)

// centerOffset shifts [0, 1] onto [-0.5, 0.5].
const centerOffset = 0.5

// Generator holds the current 32-bit state.
type Generator struct {
	state uint32
}

// step advances x once with wrapping arithmetic.
// Complexity: O(1).
func step(x uint32) uint32 {
	return x*Multiplier + Increment
}

// New returns a Generator whose state has already been advanced once from
// the raw seed, so the seed value itself is never emitted.
// Complexity: O(1).
func New(seed uint32) *Generator {
	return &Generator{state: step(seed)}
}

// Next advances the state once and returns it.
func (g *Generator) Next() uint32 {
	g.state = step(g.state)

	return g.state
}

// Centered advances the state once and maps it onto [-0.5, 0.5].
// Both endpoints are reachable: state 0 yields -0.5 and state
// math.MaxUint32 yields exactly +0.5.
func (g *Generator) Centered() float64 {
	return float64(g.Next())/stateMax - centerOffset
}

// State returns the current state without advancing.
func (g *Generator) State() uint32 { return g.state }
