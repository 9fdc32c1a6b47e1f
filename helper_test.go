// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/prob"
)

// mustFault runs f and fails unless it panics with a *prob.Fault for op
// wrapping want.
func mustFault(t *testing.T, op string, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected fault %v, got none", op, want)
		}
		fault, ok := r.(*prob.Fault)
		if !ok {
			t.Fatalf("%s: panic value %T(%v), want *prob.Fault", op, r, r)
		}
		if fault.Op != op {
			t.Fatalf("fault op got %q, want %q", fault.Op, op)
		}
		if !errors.Is(fault, want) {
			t.Fatalf("fault error got %v, want %v", fault.Err, want)
		}
	}()
	f()
}

// chiSquare returns the chi-square statistic of counts against a uniform
// expectation over len(counts) cells.
func chiSquare(counts []int, total int) float64 {
	expected := float64(total) / float64(len(counts))
	var x2 float64
	for _, c := range counts {
		d := float64(c) - expected
		x2 += d * d / expected
	}
	return x2
}

// counter counts loop body executions.
type counter struct {
	n int
}

func (c *counter) inc(x int) int {
	c.n++
	return x + 1
}
