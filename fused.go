// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"code.hybscloud.com/kont"
)

// SampleP2 draws uniformly from [0, RangeP2(n)).
// Performs UniformP2{N: n}.
func SampleP2(n uint64) kont.Eff[uint64] {
	return kont.Perform(UniformP2{N: n})
}

// SampleP2Bind draws from [0, RangeP2(n)) and passes the value to f.
// Fuses Perform(UniformP2{N: n}) + Bind.
func SampleP2Bind[B any](n uint64, f func(uint64) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(UniformP2{N: n}), f)
}

// WhileBind runs the loop and passes its final state to f.
// Fuses Perform(While[S]{...}) + Bind.
func WhileBind[S, B any](cond func(S) bool, body func(S) kont.Eff[S], init S, f func(S) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(RunWhile(cond, body, init), f)
}
