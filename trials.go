// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"runtime"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// trialQueueCapacity is the bounded capacity of each worker's result queue.
const trialQueueCapacity = 64

// TrialOptions configures Trials.
type TrialOptions struct {
	// N is the number of independent evaluations.
	N int
	// Workers is the number of goroutines; <= 0 means GOMAXPROCS.
	Workers int
	// Seed is the base seed; worker w samples from SeedFor(Seed, w).
	Seed uint64
}

// Trial is the outcome of one evaluation.
type Trial[A any] struct {
	Value   A
	Draws   uint64
	Elapsed time.Duration
}

// Trials forces m opts.N times across opts.Workers goroutines.
//
// Every worker owns its Source, so no generator state is shared. Trial i
// runs on worker i mod Workers; results are returned in trial order and are
// reproducible for a fixed Seed and worker count. Results flow back through
// one bounded lock-free SPSC queue per worker; the collector interleaves the
// queues on the calling goroutine and backs off (iox.Backoff) when none has
// a result ready.
//
// m must be a Cont-world computation, which may be forced repeatedly.
// A Fault raised by any trial aborts the process.
func Trials[A any](m kont.Eff[A], opts TrialOptions) []Trial[A] {
	n := opts.N
	if n <= 0 {
		return nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)

	queues := make([]lfq.SPSC[Trial[A]], workers)
	for w := range queues {
		queues[w].Init(trialQueueCapacity)
		go runTrials(m, &queues[w], SeedFor(opts.Seed, uint64(w)), w, workers, n)
	}

	out := make([]Trial[A], n)
	next := make([]int, workers)
	for w := range next {
		next[w] = w
	}
	var bo iox.Backoff
	for remaining := n; remaining > 0; {
		progress := false
		for w := range queues {
			if next[w] >= n {
				continue
			}
			t, err := queues[w].Dequeue()
			if err != nil {
				continue
			}
			out[next[w]] = t
			next[w] += workers
			remaining--
			progress = true
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return out
}

// runTrials forces trials first, first+stride, ... below n on its own
// source and publishes each outcome to q, waiting past iox.ErrWouldBlock.
func runTrials[A any](m kont.Eff[A], q *lfq.SPSC[Trial[A]], seed uint64, first, stride, n int) {
	src := NewSource(seed)
	h := probHandler[A]{ctx: newContext(src)}
	var bo iox.Backoff
	for i := first; i < n; i += stride {
		before := src.Draws()
		start := time.Now()
		v := kont.Handle(m, h)
		t := Trial[A]{Value: v, Draws: src.Draws() - before, Elapsed: time.Since(start)}
		for q.Enqueue(&t) != nil {
			bo.Wait()
		}
		bo.Reset()
	}
}
