// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// UniformP2 is the effect operation for power-of-two uniform sampling.
// Perform(UniformP2{N: n}) draws uniformly from [0, RangeP2(n)).
type UniformP2 struct {
	kont.Phantom[uint64]
	N uint64
}

// DispatchProb handles UniformP2 on the context's source.
// Domain violations abort with a *Fault.
func (o UniformP2) DispatchProb(ctx *probContext) (kont.Resumed, bool) {
	v, err := ctx.src.UniformP2(o.N)
	if err != nil {
		abort("UniformP2", err)
	}
	return v, true
}

// While is the effect operation for the loop combinator.
// Perform(While[S]{...}) threads state through Body while Cond holds and
// resumes with the first state for which Cond is false.
type While[S any] struct {
	kont.Phantom[S]
	Cond func(S) bool
	Body func(S) kont.Eff[S]
	Init S
}

// DispatchProb drives the loop iteratively: one Cond per test and one
// forced Body per continuing iteration. The state is replaced, never
// mutated, on every iteration.
func (o While[S]) DispatchProb(ctx *probContext) (kont.Resumed, bool) {
	state := o.Init
	for o.Cond(state) {
		v, ok := ctx.force(kont.Map(o.Body(state), erase[S]))
		if !ok {
			return nil, false
		}
		state, _ = v.(S)
	}
	return state, true
}

// WhileExpr is the Expr-world counterpart of While.
// Each Body result is a fresh Expr, evaluated once.
type WhileExpr[S any] struct {
	kont.Phantom[S]
	Cond func(S) bool
	Body func(S) kont.Expr[S]
	Init S
}

// DispatchProb drives the loop like While.DispatchProb.
func (o WhileExpr[S]) DispatchProb(ctx *probContext) (kont.Resumed, bool) {
	state := o.Init
	for o.Cond(state) {
		v, ok := ctx.force(kont.Reflect(kont.ExprMap(o.Body(state), erase[S])))
		if !ok {
			return nil, false
		}
		state, _ = v.(S)
	}
	return state, true
}
