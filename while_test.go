// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/prob"
)

func TestWhileFalseInit(t *testing.T) {
	var c counter
	src := prob.NewSource(0)
	got := prob.Exec(src, prob.RunWhile(
		func(int) bool { return false },
		func(s int) kont.Eff[int] { return prob.Pure(c.inc(s)) },
		7,
	))
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if c.n != 0 {
		t.Fatalf("body ran %d times, want 0", c.n)
	}
	if src.Draws() != 0 {
		t.Fatalf("drew %d words, want 0", src.Draws())
	}
}

func TestWhileCountsToThree(t *testing.T) {
	var c counter
	tests := 0
	got := prob.Exec(prob.NewSource(0), prob.RunWhile(
		func(s int) bool { tests++; return s < 3 },
		func(s int) kont.Eff[int] { return prob.Pure(c.inc(s)) },
		0,
	))
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if c.n != 3 {
		t.Fatalf("body ran %d times, want 3", c.n)
	}
	if tests != 4 {
		t.Fatalf("cond ran %d times, want 4", tests)
	}
}

func TestWhileDeepLoop(t *testing.T) {
	const n = 1_000_000
	got := prob.Exec(prob.NewSource(0), prob.RunWhile(
		func(s int) bool { return s < n },
		func(s int) kont.Eff[int] { return prob.Pure(s + 1) },
		0,
	))
	if got != n {
		t.Fatalf("got %d, want %d", got, n)
	}
}

func TestWhileDeepSamplingLoop(t *testing.T) {
	const n = 200_000
	src := prob.NewSource(1)
	got := prob.Exec(src, prob.RunWhile(
		func(s int) bool { return s < n },
		func(s int) kont.Eff[int] {
			return prob.Map(prob.SampleP2(2), func(uint64) int { return s + 1 })
		},
		0,
	))
	if got != n {
		t.Fatalf("got %d, want %d", got, n)
	}
	if src.Draws() != n {
		t.Fatalf("drew %d words, want %d", src.Draws(), n)
	}
}

func TestWhileNested(t *testing.T) {
	inner := func(s int) kont.Eff[int] {
		return prob.RunWhile(
			func(x int) bool { return x%10 != 9 },
			func(x int) kont.Eff[int] { return prob.Pure(x + 1) },
			s*10,
		)
	}
	got := prob.Exec(prob.NewSource(0), prob.RunWhile(
		func(s int) bool { return s < 50 },
		func(s int) kont.Eff[int] {
			return prob.Map(inner(s), func(x int) int { return x/10 + 1 })
		},
		0,
	))
	if got != 50 {
		t.Fatalf("got %d, want 50", got)
	}
}

func TestWhileFaultInBody(t *testing.T) {
	mustFault(t, "UniformP2", prob.ErrZeroBound, func() {
		prob.Exec(prob.NewSource(0), prob.RunWhile(
			func(s uint64) bool { return s < 10 },
			func(s uint64) kont.Eff[uint64] { return prob.SampleP2(s) },
			0,
		))
	})
}

func TestWhileBind(t *testing.T) {
	got := prob.Exec(prob.NewSource(0), prob.WhileBind(
		func(s int) bool { return s < 4 },
		func(s int) kont.Eff[int] { return prob.Pure(s + 2) },
		0,
		func(s int) kont.Eff[string] {
			if s == 4 {
				return prob.Pure("four")
			}
			return prob.Pure("other")
		},
	))
	if got != "four" {
		t.Fatalf("got %q, want %q", got, "four")
	}
}

func TestUntil(t *testing.T) {
	src := prob.NewSource(3)
	for range 100 {
		if got := prob.Exec(src, prob.Until(prob.SampleP2(8), func(x uint64) bool { return x == 7 })); got != 7 {
			t.Fatalf("got %d, want 7", got)
		}
	}
}

func TestUntilFirstAccepted(t *testing.T) {
	src := prob.NewSource(3)
	prob.Exec(src, prob.Until(prob.SampleP2(8), func(uint64) bool { return true }))
	if src.Draws() != 1 {
		t.Fatalf("drew %d words, want 1", src.Draws())
	}
}

func TestLoopSum(t *testing.T) {
	// Sum 1..10 iteratively.
	type state struct{ i, acc int }
	got := prob.Exec(prob.NewSource(0), prob.Loop(state{1, 0}, func(s state) kont.Eff[kont.Either[state, int]] {
		if s.i > 10 {
			return prob.Pure(kont.Right[state, int](s.acc))
		}
		return prob.Pure(kont.Left[state, int](state{s.i + 1, s.acc + s.i}))
	}))
	if got != 55 {
		t.Fatalf("got %d, want 55", got)
	}
}

func TestLoopRandomWalk(t *testing.T) {
	// Walk until 32 heads have been seen.
	src := prob.NewSource(6)
	got := prob.Exec(src, prob.Loop(0, func(heads int) kont.Eff[kont.Either[int, uint64]] {
		if heads == 32 {
			return prob.Pure(kont.Right[int, uint64](0))
		}
		return prob.Map(prob.SampleP2(2), func(b uint64) kont.Either[int, uint64] {
			return kont.Left[int, uint64](heads + int(b))
		})
	}))
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if src.Draws() < 32 {
		t.Fatalf("drew %d words, want at least 32", src.Draws())
	}
}

func TestExprRunWhile(t *testing.T) {
	var c counter
	got := prob.ExecExpr(prob.NewSource(0), prob.ExprRunWhile(
		func(s int) bool { return s < 3 },
		func(s int) kont.Expr[int] { return prob.ExprPure(c.inc(s)) },
		0,
	))
	if got != 3 || c.n != 3 {
		t.Fatalf("got %d after %d bodies, want 3 after 3", got, c.n)
	}
}

func TestExprRunWhileSampling(t *testing.T) {
	src := prob.NewSource(2)
	got := prob.ExecExpr(src, prob.ExprRunWhile(
		func(s int) bool { return s < 1000 },
		func(s int) kont.Expr[int] {
			return prob.ExprSampleP2Bind(4, func(uint64) kont.Expr[int] { return prob.ExprPure(s + 1) })
		},
		0,
	))
	if got != 1000 {
		t.Fatalf("got %d, want 1000", got)
	}
	if src.Draws() != 1000 {
		t.Fatalf("drew %d words, want 1000", src.Draws())
	}
}

func TestExprLoop(t *testing.T) {
	got := prob.ExecExpr(prob.NewSource(0), prob.ExprLoop(0, func(i int) kont.Expr[kont.Either[int, string]] {
		if i == 5 {
			return prob.ExprPure(kont.Right[int, string]("done"))
		}
		return prob.ExprPure(kont.Left[int, string](i + 1))
	}))
	if got != "done" {
		t.Fatalf("got %q, want %q", got, "done")
	}
}

func TestExprUntil(t *testing.T) {
	src := prob.NewSource(5)
	got := prob.ExecExpr(src, prob.ExprUntil(
		func() kont.Expr[uint64] { return prob.ExprSampleP2(16) },
		func(x uint64) bool { return x >= 12 },
	))
	if got < 12 || got >= 16 {
		t.Fatalf("got %d, want in [12, 16)", got)
	}
}
