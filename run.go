// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"sync"

	"code.hybscloud.com/kont"
)

// defaultMu serializes evaluation on the process-wide source.
var defaultMu sync.Mutex

// Result is the successful outcome of a top-level run.
// Failures never reach a Result: they abort before it is built.
type Result[A any] struct {
	Value A
}

// OK reports whether the run succeeded. Always true.
func (Result[A]) OK() bool { return true }

// Run forces a Cont-world computation on the process-wide [Default]
// source and wraps its value as a successful Result.
// Concurrent callers are serialized; use [Exec] with per-goroutine
// sources to sample in parallel.
func Run[A any](m kont.Eff[A]) Result[A] {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return Result[A]{Value: Exec(Default(), m)}
}

// RunExpr forces an Expr-world computation on the process-wide [Default]
// source and wraps its value as a successful Result.
func RunExpr[A any](m kont.Expr[A]) Result[A] {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return Result[A]{Value: ExecExpr(Default(), m)}
}
