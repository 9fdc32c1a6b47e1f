// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command probbench times the discrete Gaussian sampler.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"code.hybscloud.com/prob/internal/bench"
)

func main() {
	cfg, err := bench.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		bench.Exitf("Error: %v", err)
	}

	log, err := bench.NewLogger(os.Stderr, cfg.LogLevel, cfg.JSON)
	if err != nil {
		bench.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bench.Run(ctx, cfg, log, os.Stdout); err != nil {
		bench.Exitf("Error: %v", err)
	}
}
