// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// Pure lifts a value into a probabilistic computation.
// Forcing it yields a unchanged and draws nothing.
func Pure[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}

// Bind sequences two probabilistic computations.
// m is forced to completion before f runs; f's computation is forced next.
func Bind[A, B any](m kont.Eff[A], f func(A) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(m, f)
}

// Map applies a pure function to the result of m.
func Map[A, B any](m kont.Eff[A], f func(A) B) kont.Eff[B] {
	return kont.Map(m, f)
}

// Then sequences m and n, discarding the result of m.
func Then[A, B any](m kont.Eff[A], n kont.Eff[B]) kont.Eff[B] {
	return kont.Then(m, n)
}

// ExprPure lifts a value into an Expr-world computation.
func ExprPure[A any](a A) kont.Expr[A] {
	return kont.ExprReturn(a)
}

// ExprBind sequences two Expr-world computations.
func ExprBind[A, B any](m kont.Expr[A], f func(A) kont.Expr[B]) kont.Expr[B] {
	return kont.ExprBind(m, f)
}
