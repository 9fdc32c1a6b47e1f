// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/prob"
)

func TestSampleP2BindMatchesBind(t *testing.T) {
	f := func(x uint64) kont.Eff[uint64] { return prob.Pure(x * 2) }
	fused := prob.Exec(prob.NewSource(17), prob.SampleP2Bind(1<<10, f))
	plain := prob.Exec(prob.NewSource(17), prob.Bind(prob.SampleP2(1<<10), f))
	if fused != plain {
		t.Fatalf("fused %d, plain %d", fused, plain)
	}
}

func TestExprSampleP2BindMatchesExprBind(t *testing.T) {
	f := func(x uint64) kont.Expr[uint64] { return prob.ExprPure(x + 1) }
	fused := prob.ExecExpr(prob.NewSource(17), prob.ExprSampleP2Bind(1<<10, f))
	plain := prob.ExecExpr(prob.NewSource(17), prob.ExprBind(prob.ExprSampleP2(1<<10), f))
	if fused != plain {
		t.Fatalf("fused %d, plain %d", fused, plain)
	}
}

func TestExprSampleP2BindChain(t *testing.T) {
	// Five chained draws, each a fresh pooled frame pair.
	var chain func(depth int, acc uint64) kont.Expr[uint64]
	chain = func(depth int, acc uint64) kont.Expr[uint64] {
		if depth == 0 {
			return prob.ExprPure(acc)
		}
		return prob.ExprSampleP2Bind(2, func(b uint64) kont.Expr[uint64] {
			return chain(depth-1, acc<<1|b)
		})
	}
	src := prob.NewSource(0)
	got := prob.ExecExpr(src, chain(5, 0))
	if got >= 32 {
		t.Fatalf("got %d, want < 32", got)
	}
	if src.Draws() != 5 {
		t.Fatalf("drew %d words, want 5", src.Draws())
	}
}
