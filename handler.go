// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// probContext holds the state a probabilistic operation dispatches against.
type probContext struct {
	src *Source
	// force evaluates a loop body to completion under the active handler.
	// It reports false when the body short-circuited; the active handler
	// then owns the final result.
	force func(m kont.Eff[kont.Erased]) (kont.Erased, bool)
}

// probDispatcher is the structural interface for probabilistic operations.
// DispatchProb never blocks; it returns (value, true) to resume, or
// (nil, false) when a nested evaluation short-circuited.
type probDispatcher interface {
	DispatchProb(ctx *probContext) (kont.Resumed, bool)
}

// probHandler implements kont.Handler for probabilistic effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type probHandler[R any] struct {
	ctx *probContext
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h probHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(probDispatcher)
	if !ok {
		panic("prob: unhandled effect in probHandler")
	}
	return sop.DispatchProb(h.ctx)
}

// newContext binds src to a context whose loop bodies run under probHandler.
func newContext(src *Source) *probContext {
	ctx := &probContext{src: src}
	ctx.force = func(m kont.Eff[kont.Erased]) (kont.Erased, bool) {
		return kont.Handle(m, probHandler[kont.Erased]{ctx: ctx}), true
	}
	return ctx
}

// erase widens a typed loop state for force.
func erase[S any](s S) kont.Erased { return s }
