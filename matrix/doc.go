// SPDX-License-Identifier: MIT

// Package matrix offers dense square-matrix kernels over flat row-major buffers.
//
// The matrix package provides:
//
//   - MulFlat: C = A × B for n×n operands in i→k→j order with A[i,k] hoisted,
//     O(n³) time, fresh zeroed output.
//   - RandFlat: reproducible n×n buffers from the 32-bit LCG in package lcg.
//   - Dense: a row-major container whose backing slice feeds the flat kernels
//     directly (Mul, Random, NewIdentity).
//   - AllClose: tolerance-based comparison for floating-point results.
//
// Element (row, col) of an n×n buffer lives at index row*n + col.
//
// Errors are package sentinels (errors.go) wrapped as "<Op>: <sentinel>";
// match them with errors.Is. No exported function panics on user input.
package matrix
