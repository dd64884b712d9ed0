// SPDX-License-Identifier: MIT

// Package main provides a CLI that exercises the numkern kernels as a host
// application would: factorial comparison and a verified random matrix product.
//
// Settings come from NUMKERN_* environment variables; flags override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/numkern/internal/config"
	"github.com/katalvlaran/numkern/internal/demo"
)

// errSeedRange reports a -seed-a/-seed-b value that does not fit in 32 bits.
var errSeedRange = errors.New("seeds must fit in 32 bits")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("numkern: %v", err)
	}
}

// run loads the environment, applies flag overrides from args and runs the demo on out.
func run(args []string, out io.Writer) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	return demo.Run(out, cfg)
}

// parseConfig builds the effective Config: environment first, then flags.
func parseConfig(args []string) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	fs := flag.NewFlagSet("numkern", flag.ContinueOnError)
	var seedA, seedB uint64
	fs.IntVar(&cfg.FactN, "fact-n", cfg.FactN, "factorial argument (0..25)")
	fs.IntVar(&cfg.MatN, "mat-n", cfg.MatN, "matrix order (2..256)")
	fs.Uint64Var(&seedA, "seed-a", uint64(cfg.SeedA), "LCG seed for the left matrix")
	fs.Uint64Var(&seedB, "seed-b", uint64(cfg.SeedB), "LCG seed for the right matrix")
	fs.IntVar(&cfg.PrintLimit, "print-limit", cfg.PrintLimit, "print the full product up to this order")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	if seedA > math.MaxUint32 || seedB > math.MaxUint32 {
		return config.Config{}, fmt.Errorf("got %d, %d: %w", seedA, seedB, errSeedRange)
	}
	cfg.SeedA = uint32(seedA)
	cfg.SeedB = uint32(seedB)

	return cfg, nil
}
