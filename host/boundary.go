// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

import (
	"code.hybscloud.com/prob"
)

// Boundary exposes the probabilistic primitives to a host runtime.
//
// Computations are host closures taking the execution token; the boundary
// never inspects them, it only applies them. A Boundary owns its Source
// and must be used by one host thread at a time; give each host worker
// thread its own Boundary.
type Boundary struct {
	rt  Runtime
	src *prob.Source
}

// New creates a Boundary sampling from src through rt.
func New(rt Runtime, src *prob.Source) *Boundary {
	return &Boundary{rt: rt, src: src}
}

// Source returns the boundary's entropy source.
func (b *Boundary) Source() *prob.Source { return b.src }

// abort reports a fault through the host's fatal-abort primitive.
func (b *Boundary) abort(op string, err error) {
	b.rt.Panic((&prob.Fault{Op: op, Err: err}).Error())
	panic("host: Runtime.Panic returned")
}

// UniformP2 samples uniformly from [0, prob.RangeP2(n)) where a boxes n.
// Aborts through the runtime when a is not a boxed scalar, is zero, or
// needs MaxBits or more bits.
func (b *Boundary) UniformP2(a, _ Value) Value {
	if !a.IsScalar() {
		b.abort("UniformP2", prob.ErrScalarBound)
	}
	v, err := b.src.UniformP2(a.Unbox())
	if err != nil {
		b.abort("UniformP2", err)
	}
	return Box(v)
}

// Pure returns a unchanged.
func (b *Boundary) Pure(a, _ Value) Value {
	return a
}

// Bind forces f, then applies g to its value and the token.
func (b *Boundary) Bind(f, g, world Value) Value {
	x := b.rt.Apply(f, world)
	return b.rt.Apply(g, x, world)
}

// While threads state through body while cond holds.
// cond is applied to the state alone and must return a boxed boolean;
// body is applied to the state and the token.
func (b *Boundary) While(cond, body, init, world Value) Value {
	state := init
	for b.test(cond, state) {
		state = b.rt.Apply(body, state, world)
	}
	return state
}

func (b *Boundary) test(cond, state Value) bool {
	c := b.rt.Apply(cond, state)
	if !c.IsScalar() {
		b.abort("While", prob.ErrNotScalar)
	}
	return c.Unbox() != 0
}

// Run forces computation a and wraps its value as a successful effect result.
func (b *Boundary) Run(a Value) Value {
	return b.rt.OK(b.rt.Apply(a, World))
}
