// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// probErrorHandler handles both probabilistic and error effects.
// Probabilistic ops sample on the context's source. Error ops short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type probErrorHandler[E, A any] struct {
	ctx    *probContext
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Prob+Error handler.
// Dispatch order: Prob → Error. A loop whose body threw reports false
// from DispatchProb, and the recorded error ends the computation.
func (h probErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if sop, ok := op.(probDispatcher); ok {
		v, ok := sop.DispatchProb(h.ctx)
		if !ok {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("prob: unhandled effect in probErrorHandler")
}

// rightErased tags a loop body result as successful.
func rightErased[E any](v kont.Erased) kont.Either[E, kont.Erased] {
	return kont.Right[E](v)
}

// newErrorContext binds src and errCtx to a context whose loop bodies run
// under probErrorHandler. A body that throws records the error in errCtx
// and stops the loop.
func newErrorContext[E any](src *Source, errCtx *kont.ErrorContext[E]) *probContext {
	ctx := &probContext{src: src}
	ctx.force = func(m kont.Eff[kont.Erased]) (kont.Erased, bool) {
		h := probErrorHandler[E, kont.Erased]{ctx: ctx, errCtx: errCtx}
		result := kont.Handle(kont.Map(m, rightErased[E]), h)
		if errCtx.HasErr {
			return nil, false
		}
		v, _ := result.GetRight()
		return v, true
	}
	return ctx
}

// ExecError forces a computation with error handling on src.
// Returns Either[E, R] — Right on success, Left on Throw.
// Sampling faults are not errors: they still abort.
func ExecError[E, R any](src *Source, m kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](m, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := probErrorHandler[E, R]{ctx: newErrorContext(src, &errCtx), errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr forces an Expr computation with error handling on src.
// Returns Either[E, R] — Right on success, Left on Throw.
func ExecErrorExpr[E, R any](src *Source, m kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(m, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := probErrorHandler[E, R]{ctx: newErrorContext(src, &errCtx), errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// StepError evaluates a computation with error support until the first
// effect suspension. Returns (Either[E, R], nil) on completion or error,
// or (zero, suspension) if pending.
func StepError[E, R any](m kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	wrapped := kont.ExprMap(m, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended operation on src.
// Probabilistic ops sample eagerly; a loop whose body throws discards the
// suspension and returns Left. Throw discards the suspension and returns Left.
func AdvanceError[E, R any](src *Source, susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	var errCtx kont.ErrorContext[E]
	// Probabilistic ops: eager dispatch
	if sop, ok := susp.Op().(probDispatcher); ok {
		v, ok := sop.DispatchProb(newErrorContext(src, &errCtx))
		if !ok {
			susp.Discard()
			return kont.Left[E, R](errCtx.Err), nil
		}
		return susp.Resume(v)
	}
	// Error ops: eager dispatch
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(&errCtx)
		if errCtx.HasErr {
			susp.Discard()
			return kont.Left[E, R](errCtx.Err), nil
		}
		return susp.Resume(v)
	}
	panic("prob: unhandled effect in AdvanceError")
}
