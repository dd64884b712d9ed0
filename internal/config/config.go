// SPDX-License-Identifier: MIT

// Package config loads the demo host configuration from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Host input ranges.
const (
	MinFactN = 0
	MaxFactN = 25
	MinMatN  = 2
	MaxMatN  = 256
)

// ErrOutOfRange reports a configuration value outside its allowed range.
var ErrOutOfRange = errors.New("config: value out of range")

// Config holds the demo host settings.
type Config struct {
	FactN      int    `env:"NUMKERN_FACT_N" envDefault:"20"`
	MatN       int    `env:"NUMKERN_MAT_N" envDefault:"4"`
	SeedA      uint32 `env:"NUMKERN_SEED_A" envDefault:"123"`
	SeedB      uint32 `env:"NUMKERN_SEED_B" envDefault:"456"`
	PrintLimit int    `env:"NUMKERN_PRINT_LIMIT" envDefault:"8"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses a Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its host range.
func (c Config) Validate() error {
	if c.FactN < MinFactN || c.FactN > MaxFactN {
		return fmt.Errorf("fact-n %d not in %d..%d: %w", c.FactN, MinFactN, MaxFactN, ErrOutOfRange)
	}
	if c.MatN < MinMatN || c.MatN > MaxMatN {
		return fmt.Errorf("mat-n %d not in %d..%d: %w", c.MatN, MinMatN, MaxMatN, ErrOutOfRange)
	}
	if c.PrintLimit < 0 {
		return fmt.Errorf("print-limit %d is negative: %w", c.PrintLimit, ErrOutOfRange)
	}
	return nil
}
