// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/katalvlaran/numkern/internal/config"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"NUMKERN_FACT_N", "NUMKERN_MAT_N", "NUMKERN_SEED_A", "NUMKERN_SEED_B", "NUMKERN_PRINT_LIMIT"}

// clearEnv unsets every NUMKERN_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, config.Config{FactN: 20, MatN: 4, SeedA: 123, SeedB: 456, PrintLimit: 8}, cfg)
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NUMKERN_FACT_N", "7")
	t.Setenv("NUMKERN_MAT_N", "16")
	t.Setenv("NUMKERN_SEED_A", "1")

	cfg, err := parseConfig([]string{"-mat-n", "3", "-seed-a", "4294967295"})
	require.NoError(t, err)
	require.Equal(t, 7, cfg.FactN)                  // env, no flag
	require.Equal(t, 3, cfg.MatN)                   // flag wins
	require.Equal(t, uint32(4294967295), cfg.SeedA) // flag wins, max seed accepted
	require.Equal(t, uint32(456), cfg.SeedB)        // default
}

func TestParseConfigSeedRange(t *testing.T) {
	clearEnv(t)

	_, err := parseConfig([]string{"-seed-a", "4294967296"})
	require.ErrorIs(t, err, errSeedRange)

	_, err = parseConfig([]string{"-seed-b", "18446744073709551615"})
	require.ErrorIs(t, err, errSeedRange)
}

func TestParseConfigBadInput(t *testing.T) {
	clearEnv(t)

	_, err := parseConfig([]string{"-mat-n", "four"})
	require.Error(t, err)

	t.Setenv("NUMKERN_SEED_A", "-1")
	_, err = parseConfig(nil)
	require.ErrorContains(t, err, "load config")
}

func TestRun(t *testing.T) {
	clearEnv(t)

	var buf bytes.Buffer
	require.NoError(t, run([]string{"-fact-n", "5", "-mat-n", "2"}, &buf))
	require.Contains(t, buf.String(), "factorial iter: n=5 result=120")
	require.Contains(t, buf.String(), "output length=4")

	require.ErrorIs(t, run([]string{"-mat-n", "1"}, io.Discard), config.ErrOutOfRange)
}
