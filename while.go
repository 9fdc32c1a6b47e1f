// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// RunWhile threads state through body while cond holds (Cont-world).
// Returns init unchanged when cond(init) is false. The loop has no
// iteration cap: an always-true cond never terminates.
func RunWhile[S any](cond func(S) bool, body func(S) kont.Eff[S], init S) kont.Eff[S] {
	return kont.Perform(While[S]{Cond: cond, Body: body, Init: init})
}

// ExprRunWhile threads state through body while cond holds (Expr-world).
func ExprRunWhile[S any](cond func(S) bool, body func(S) kont.Expr[S], init S) kont.Expr[S] {
	return kont.ExprPerform(WhileExpr[S]{Cond: cond, Body: body, Init: init})
}

// Until runs body, then reruns it until accept holds for its result.
// This is rejection sampling: the accepted value is returned.
func Until[A any](body kont.Eff[A], accept func(A) bool) kont.Eff[A] {
	return kont.Bind(body, func(first A) kont.Eff[A] {
		return RunWhile(func(a A) bool { return !accept(a) }, func(A) kont.Eff[A] { return body }, first)
	})
}

// Loop runs a recursive probabilistic computation (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Iterations are driven by RunWhile, so the stack does not grow.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	pending := func(e kont.Either[S, A]) bool { return e.IsLeft() }
	next := func(e kont.Either[S, A]) kont.Eff[kont.Either[S, A]] {
		s, _ := e.GetLeft()
		return step(s)
	}
	return kont.Map(RunWhile(pending, next, kont.Left[S, A](initial)), func(e kont.Either[S, A]) A {
		a, _ := e.GetRight()
		return a
	})
}

// ExprLoop runs a recursive probabilistic computation (Expr-world).
// step returns Left(nextState) to continue or Right(result) to finish.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	pending := func(e kont.Either[S, A]) bool { return e.IsLeft() }
	next := func(e kont.Either[S, A]) kont.Expr[kont.Either[S, A]] {
		s, _ := e.GetLeft()
		return step(s)
	}
	return kont.ExprMap(ExprRunWhile(pending, next, kont.Left[S, A](initial)), func(e kont.Either[S, A]) A {
		a, _ := e.GetRight()
		return a
	})
}
