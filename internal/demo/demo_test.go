// SPDX-License-Identifier: MIT

package demo_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/numkern/internal/config"
	"github.com/katalvlaran/numkern/internal/demo"
	"github.com/stretchr/testify/require"
)

func TestFactorials(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.Factorials(&buf, 5))
	require.Equal(t, "factorial iter: n=5 result=120\nfactorial rec:  n=5 result=120\n", buf.String())

	buf.Reset()
	require.NoError(t, demo.Factorials(&buf, 25))
	require.Contains(t, buf.String(), "result=18446744073709551615")
}

func TestMatMulPrintsMatrix(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{FactN: 5, MatN: 2, SeedA: 123, SeedB: 456, PrintLimit: 8}

	require.NoError(t, demo.MatMul(&buf, cfg))
	out := buf.String()
	require.Contains(t, out, "matmul: n=2 seeds=123,456 output length=4\n")
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("]\n")))
	require.NotContains(t, out, "checksum")
}

func TestMatMulChecksum(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{FactN: 5, MatN: 32, SeedA: 1, SeedB: 2, PrintLimit: 8}

	require.NoError(t, demo.MatMul(&buf, cfg))
	require.Contains(t, buf.String(), "output length=1024")
	require.Contains(t, buf.String(), "checksum=")
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{FactN: 20, MatN: 3, SeedA: 123, SeedB: 456, PrintLimit: 8}

	require.NoError(t, demo.Run(&buf, cfg))
	require.Contains(t, buf.String(), "result=2432902008176640000")
	require.Contains(t, buf.String(), "output length=9")
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	var buf bytes.Buffer
	err := demo.Run(&buf, config.Config{FactN: 30, MatN: 3})
	require.ErrorIs(t, err, config.ErrOutOfRange)
	require.Empty(t, buf.String())
}
