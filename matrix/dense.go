// SPDX-License-Identifier: MIT
// Package matrix provides square-matrix kernels over flat row-major buffers.
// Dense is a thin shaped view over such a buffer: Mul and Random hand their
// flat results to it, and it hands its backing slice straight back to the
// flat kernels.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// Element (row, col) lives at data[row*c+col]; len(data) == r*c.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates a zeroed rows×cols Dense.
// Errors: ErrInvalidDimensions if rows <= 0 or cols <= 0.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a row-major buffer of length rows*cols into a new Dense.
// The caller keeps ownership of data.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: len=%d want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// wrapDense adopts buf without copying. Callers guarantee len(buf) == n*n, n > 0.
func wrapDense(n int, buf []float64) *Dense {
	return &Dense{r: n, c: n, data: buf}
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// RawData returns a copy of the row-major backing slice.
// Complexity: O(r*c).
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders one bracketed, comma-separated line per row using the
// shortest representation that round-trips each value ("%g" style).
func (m *Dense) String() string {
	var sb strings.Builder
	for row := 0; row < m.r; row++ {
		cells := m.data[row*m.c : (row+1)*m.c]
		sb.WriteByte('[')
		for col, v := range cells {
			if col > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
