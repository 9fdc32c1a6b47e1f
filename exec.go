// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// Exec forces a Cont-world probabilistic computation on src.
// Evaluation is synchronous on the calling goroutine; a computation
// that violates a sampling precondition aborts with a *Fault.
func Exec[R any](src *Source, m kont.Eff[R]) R {
	h := probHandler[R]{ctx: newContext(src)}
	return kont.Handle(m, h)
}

// ExecExpr forces an Expr-world probabilistic computation on src.
// Pooled Expr frames are single-use: evaluate each Expr at most once.
func ExecExpr[R any](src *Source, m kont.Expr[R]) R {
	h := probHandler[R]{ctx: newContext(src)}
	return kont.HandleExpr(m, h)
}
