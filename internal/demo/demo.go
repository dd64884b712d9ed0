// SPDX-License-Identifier: MIT

// Package demo drives the numkern kernels the way a host application does:
// it compares the two factorial methods and checks the matrix product of two
// generated matrices against a reference kernel. Results go to an io.Writer.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/numkern"
	"github.com/katalvlaran/numkern/internal/config"
	"github.com/katalvlaran/numkern/matrix"
)

// ErrMismatch reports that two computations of the same value disagree.
var ErrMismatch = errors.New("demo: results disagree")

// Run executes the factorial section and then the matrix section.
func Run(w io.Writer, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := Factorials(w, uint32(cfg.FactN)); err != nil {
		return err
	}
	return MatMul(w, cfg)
}

// Factorials prints n! from both methods and fails if they differ.
func Factorials(w io.Writer, n uint32) error {
	iter := numkern.FactorialIter(n)
	rec := numkern.FactorialRec(n)

	fmt.Fprintf(w, "factorial iter: n=%d result=%d\n", n, iter)
	fmt.Fprintf(w, "factorial rec:  n=%d result=%d\n", n, rec)
	if iter != rec {
		return fmt.Errorf("factorial n=%d: iter=%d rec=%d: %w", n, iter, rec, ErrMismatch)
	}
	return nil
}

// MatMul multiplies two generated matrices and verifies the product against
// a naive i→j→k reference within matrix.DefaultRTol/DefaultATol.
func MatMul(w io.Writer, cfg config.Config) error {
	n := cfg.MatN
	a := numkern.MakeRandMatrix(n, cfg.SeedA)
	b := numkern.MakeRandMatrix(n, cfg.SeedB)

	c := numkern.MatMul(a, b, n)
	fmt.Fprintf(w, "matmul: n=%d seeds=%d,%d output length=%d\n", n, cfg.SeedA, cfg.SeedB, len(c))
	if len(c) != n*n {
		return fmt.Errorf("matmul n=%d: output length %d: %w", n, len(c), ErrMismatch)
	}

	ref := reference(a, b, n)
	if !matrix.AllClose(c, ref, matrix.DefaultRTol, matrix.DefaultATol) {
		return fmt.Errorf("matmul n=%d: kernel and reference differ: %w", n, ErrMismatch)
	}

	if n <= cfg.PrintLimit {
		m, err := matrix.NewDenseFrom(n, n, c)
		if err != nil {
			return fmt.Errorf("matmul: %w", err)
		}
		fmt.Fprint(w, m)
	} else {
		fmt.Fprintf(w, "checksum=%.12g\n", checksum(c))
	}
	return nil
}

// reference is the textbook i→j→k product.
func reference(a, b []float64, n int) []float64 {
	c := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return c
}

func checksum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}
