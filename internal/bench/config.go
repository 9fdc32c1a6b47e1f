// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// MaxSigma is the largest σ the Gaussian sampler supports without its
// Bernoulli bounds leaving the UniformP2 domain in practice.
const MaxSigma = 50

// Config holds benchmark configuration.
type Config struct {
	Mix      []uint64 `env:"PROB_BENCH_MIX"       envDefault:"0,7" envSeparator:","`
	Warmup   int      `env:"PROB_BENCH_WARMUP"    envDefault:"100"`
	Trials   int      `env:"PROB_BENCH_TRIALS"    envDefault:"1000"`
	Min      uint64   `env:"PROB_BENCH_MIN"       envDefault:"1"`
	Max      uint64   `env:"PROB_BENCH_MAX"       envDefault:"20"`
	Quantity int      `env:"PROB_BENCH_QUANTITY"  envDefault:"10"`
	Seed     uint64   `env:"PROB_BENCH_SEED"      envDefault:"5489"`
	Workers  int      `env:"PROB_BENCH_WORKERS"   envDefault:"1"`
	JSON     bool     `env:"PROB_BENCH_JSON"`
	LogLevel string   `env:"PROB_BENCH_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment variables, then flags, into a Config.
// Flags override the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Func("mix", "comma-separated mix thresholds (default "+formatMix(cfg.Mix)+")", func(s string) error {
		mix, err := parseMix(s)
		if err != nil {
			return err
		}
		cfg.Mix = mix
		return nil
	})
	fs.IntVar(&cfg.Warmup, "warmup", cfg.Warmup, "discarded trials per configuration")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "measured trials per configuration")
	fs.Uint64Var(&cfg.Min, "min", cfg.Min, "smallest σ")
	fs.Uint64Var(&cfg.Max, "max", cfg.Max, "largest σ")
	fs.IntVar(&cfg.Quantity, "quantity", cfg.Quantity, "number of σ values")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "base seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "sampling goroutines")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "write JSON lines instead of a table")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case len(c.Mix) == 0:
		return errors.New("at least one mix value is required")
	case c.Warmup < 0:
		return errors.New("warmup must not be negative")
	case c.Trials <= 0:
		return errors.New("trials must be positive")
	case c.Min == 0:
		return errors.New("min must be positive")
	case c.Max < c.Min:
		return fmt.Errorf("max %d is below min %d", c.Max, c.Min)
	case c.Max > MaxSigma:
		return fmt.Errorf("max %d exceeds %d", c.Max, MaxSigma)
	case c.Quantity <= 0:
		return errors.New("quantity must be positive")
	}
	return nil
}

func parseMix(s string) ([]uint64, error) {
	var mix []uint64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse mix %q: %w", f, err)
		}
		mix = append(mix, v)
	}
	return mix, nil
}

func formatMix(mix []uint64) string {
	parts := make([]string, len(mix))
	for i, v := range mix {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ",")
}

// Exitf prints a formatted message to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
