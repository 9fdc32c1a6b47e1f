// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a probabilistic computation until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](m kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(m)
}

// Advance dispatches the suspended operation on src and resumes the
// computation up to its next suspension or completion.
// Sampling never blocks, so the suspension is always consumed. A While
// suspension runs its whole loop before Advance returns.
func Advance[R any](src *Source, susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	sop, ok := susp.Op().(probDispatcher)
	if !ok {
		panic("prob: unhandled effect in Advance")
	}
	v, _ := sop.DispatchProb(newContext(src))
	return susp.Resume(v)
}
