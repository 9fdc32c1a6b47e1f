// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated frame to eliminate heap escapes when boxing the empty
// ReturnFrame into kont.Frame during Expr-world construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprSampleP2 draws uniformly from [0, RangeP2(n)) (Expr-world).
func ExprSampleP2(n uint64) kont.Expr[uint64] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = UniformP2{N: n}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[uint64](ef)
}

// ExprSampleP2Bind draws from [0, RangeP2(n)) and passes the value to f.
// Fuses ExprPerform(UniformP2{N: n}) + ExprBind.
func ExprSampleP2Bind[B any](n uint64, f func(uint64) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		result := f(a.(uint64))
		return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
	}
	bf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = UniformP2{N: n}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprUntil evaluates the Expr built by body, rebuilding and rerunning it
// until accept holds for its result. body must return a fresh Expr on
// every call: Expr frames are released once evaluated.
func ExprUntil[A any](body func() kont.Expr[A], accept func(A) bool) kont.Expr[A] {
	return kont.ExprBind(body(), func(first A) kont.Expr[A] {
		return ExprRunWhile(func(a A) bool { return !accept(a) }, func(A) kont.Expr[A] { return body() }, first)
	})
}
