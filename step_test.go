// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/prob"
)

// stepAll drives m to completion on src via Step+Advance, counting
// suspensions.
func stepAll[R any](src *prob.Source, m kont.Expr[R]) (R, int) {
	result, susp := prob.Step(m)
	steps := 0
	for susp != nil {
		steps++
		result, susp = prob.Advance(src, susp)
	}
	return result, steps
}

func TestStepPure(t *testing.T) {
	result, susp := prob.Step(prob.ExprPure(3))
	if susp != nil {
		t.Fatal("pure computation suspended")
	}
	if result != 3 {
		t.Fatalf("got %d, want 3", result)
	}
}

func TestStepAdvanceSamples(t *testing.T) {
	m := prob.ExprSampleP2Bind(16, func(a uint64) kont.Expr[uint64] {
		return prob.ExprSampleP2Bind(16, func(b uint64) kont.Expr[uint64] {
			return prob.ExprPure(a*16 + b)
		})
	})
	src := prob.NewSource(12)
	got, steps := stepAll(src, m)
	if steps != 2 {
		t.Fatalf("got %d suspensions, want 2", steps)
	}

	ref := prob.NewSource(12)
	a, _ := ref.UniformP2(16)
	b, _ := ref.UniformP2(16)
	if got != a*16+b {
		t.Fatalf("got %d, want %d", got, a*16+b)
	}
}

func TestStepSuspensionOp(t *testing.T) {
	_, susp := prob.Step(prob.ExprSampleP2(32))
	if susp == nil {
		t.Fatal("expected suspension")
	}
	op, ok := susp.Op().(prob.UniformP2)
	if !ok {
		t.Fatalf("op got %T, want prob.UniformP2", susp.Op())
	}
	if op.N != 32 {
		t.Fatalf("op.N got %d, want 32", op.N)
	}
	v, next := prob.Advance(prob.NewSource(0), susp)
	if next != nil || v >= 32 {
		t.Fatalf("got (%d, %v)", v, next)
	}
}

func TestStepWhileSingleSuspension(t *testing.T) {
	// The whole loop is dispatched by one Advance.
	m := prob.ExprRunWhile(
		func(s int) bool { return s < 50 },
		func(s int) kont.Expr[int] {
			return prob.ExprSampleP2Bind(2, func(uint64) kont.Expr[int] { return prob.ExprPure(s + 1) })
		},
		0,
	)
	src := prob.NewSource(0)
	got, steps := stepAll(src, m)
	if got != 50 {
		t.Fatalf("got %d, want 50", got)
	}
	if steps != 1 {
		t.Fatalf("got %d suspensions, want 1", steps)
	}
	if src.Draws() != 50 {
		t.Fatalf("drew %d words, want 50", src.Draws())
	}
}

func TestStepMatchesExec(t *testing.T) {
	build := func() kont.Expr[uint64] {
		return prob.ExprSampleP2Bind(1<<12, func(a uint64) kont.Expr[uint64] {
			return prob.ExprBind(prob.ExprSampleP2(1<<12), func(b uint64) kont.Expr[uint64] {
				return prob.ExprPure(a ^ b)
			})
		})
	}
	stepped, _ := stepAll(prob.NewSource(77), build())
	forced := prob.ExecExpr(prob.NewSource(77), build())
	if stepped != forced {
		t.Fatalf("stepped %d, forced %d", stepped, forced)
	}
}

func TestAdvanceFault(t *testing.T) {
	_, susp := prob.Step(prob.ExprSampleP2(0))
	mustFault(t, "UniformP2", prob.ErrZeroBound, func() {
		prob.Advance(prob.NewSource(0), susp)
	})
}

func TestStepErrorThrow(t *testing.T) {
	m := prob.ExprSampleP2Bind(8, func(uint64) kont.Expr[int] {
		return kont.ExprThrowError[string, int]("stop")
	})
	src := prob.NewSource(0)
	result, susp := prob.StepError[string](m)
	for susp != nil {
		result, susp = prob.AdvanceError(src, susp)
	}
	if e, ok := result.GetLeft(); !ok || e != "stop" {
		t.Fatalf("got %+v, want Left(stop)", result)
	}
	if src.Draws() != 1 {
		t.Fatalf("drew %d words, want 1", src.Draws())
	}
}

func TestStepErrorThrowInWhile(t *testing.T) {
	m := prob.ExprRunWhile(
		func(s int) bool { return s < 10 },
		func(s int) kont.Expr[int] {
			if s == 4 {
				return kont.ExprThrowError[string, int]("four")
			}
			return prob.ExprPure(s + 1)
		},
		0,
	)
	result, susp := prob.StepError[string](m)
	for susp != nil {
		result, susp = prob.AdvanceError(prob.NewSource(0), susp)
	}
	if e, ok := result.GetLeft(); !ok || e != "four" {
		t.Fatalf("got %+v, want Left(four)", result)
	}
}

func TestStepErrorSuccess(t *testing.T) {
	result, susp := prob.StepError[string](prob.ExprSampleP2(4))
	for susp != nil {
		result, susp = prob.AdvanceError(prob.NewSource(0), susp)
	}
	if v, ok := result.GetRight(); !ok || v >= 4 {
		t.Fatalf("got %+v, want Right(<4)", result)
	}
}
