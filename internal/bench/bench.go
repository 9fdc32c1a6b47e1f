// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench times the discrete Gaussian sampler across a grid of σ
// values and Laplace mix thresholds.
package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"code.hybscloud.com/prob"
)

// Row is the timing of one (σ, mix) configuration.
type Row struct {
	Sigma  uint64  `json:"sigma"`
	Mix    uint64  `json:"mix"`
	MeanMS float64 `json:"mean_ms"`
	StdMS  float64 `json:"std_ms"`
	Draws  float64 `json:"draws"`
}

// Sigmas returns quantity values evenly spaced over [lo, hi], rounded to
// the nearest integer, with repeats removed.
func Sigmas(lo, hi uint64, quantity int) []uint64 {
	if quantity <= 1 {
		return []uint64{lo}
	}
	out := make([]uint64, 0, quantity)
	step := float64(hi-lo) / float64(quantity-1)
	for i := range quantity {
		s := uint64(math.Round(float64(lo) + step*float64(i)))
		if n := len(out); n > 0 && out[n-1] == s {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Measure runs warmup+trials Gaussian samples with σ = sigma and returns
// the statistics of the measured trials.
func Measure(cfg Config, sigma, mix uint64) Row {
	m := prob.DiscreteGaussian(sigma, 1, mix)
	results := prob.Trials(m, prob.TrialOptions{
		N:       cfg.Warmup + cfg.Trials,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
	})
	results = results[cfg.Warmup:]

	var sum, sq, draws float64
	for _, r := range results {
		ms := float64(r.Elapsed) / float64(time.Millisecond)
		sum += ms
		sq += ms * ms
		draws += float64(r.Draws)
	}
	n := float64(len(results))
	mean := sum / n
	return Row{
		Sigma:  sigma,
		Mix:    mix,
		MeanMS: mean,
		StdMS:  math.Sqrt(max(sq/n-mean*mean, 0)),
		Draws:  draws / n,
	}
}

// Run measures every configuration of cfg and writes the results to out.
// Cancellation is checked between σ values.
func Run(ctx context.Context, cfg Config, log zerolog.Logger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	sigmas := Sigmas(cfg.Min, cfg.Max, cfg.Quantity)
	log.Info().
		Uints64("sigmas", sigmas).
		Uints64("mix", cfg.Mix).
		Int("warmup", cfg.Warmup).
		Int("trials", cfg.Trials).
		Int("workers", cfg.Workers).
		Uint64("seed", cfg.Seed).
		Msg("benchmark started")

	w := newWriter(out, cfg.JSON)
	if err := w.header(cfg.Mix); err != nil {
		return err
	}
	start := time.Now()
	for _, sigma := range sigmas {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Uint64("sigma", sigma).Msg("benchmark interrupted")
			return err
		}
		rows := make([]Row, 0, len(cfg.Mix))
		for _, mix := range cfg.Mix {
			r := Measure(cfg, sigma, mix)
			log.Debug().
				Uint64("sigma", sigma).
				Uint64("mix", mix).
				Float64("mean_ms", r.MeanMS).
				Float64("std_ms", r.StdMS).
				Float64("draws", r.Draws).
				Msg("measured")
			rows = append(rows, r)
		}
		if err := w.rows(rows); err != nil {
			return err
		}
	}
	if err := w.flush(); err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("benchmark finished")
	return nil
}

// writer renders rows as a table or JSON lines.
type writer struct {
	tw  *tabwriter.Writer
	enc *json.Encoder
}

func newWriter(out io.Writer, asJSON bool) *writer {
	if asJSON {
		return &writer{enc: json.NewEncoder(out)}
	}
	return &writer{tw: tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)}
}

func (w *writer) header(mix []uint64) error {
	if w.tw == nil {
		return nil
	}
	if _, err := fmt.Fprint(w.tw, "sigma\t"); err != nil {
		return err
	}
	for _, m := range mix {
		if _, err := fmt.Fprintf(w.tw, "mean[%d]\tstd[%d]\t", m, m); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w.tw)
	return err
}

func (w *writer) rows(rows []Row) error {
	if w.enc != nil {
		for _, r := range rows {
			if err := w.enc.Encode(r); err != nil {
				return fmt.Errorf("encode row: %w", err)
			}
		}
		return nil
	}
	if _, err := fmt.Fprintf(w.tw, "%d\t", rows[0].Sigma); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w.tw, "%.6f\t%.6f\t", r.MeanMS, r.StdMS); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w.tw)
	return err
}

func (w *writer) flush() error {
	if w.tw == nil {
		return nil
	}
	return w.tw.Flush()
}
