// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"
	"math/bits"

	"code.hybscloud.com/kont"
)

// Derived samplers built only from SampleP2, Bind and the loop combinators.
// The exact Bernoulli-exponential, Laplace and Gaussian samplers follow
// Canonne, Kamath and Steinke, "The Discrete Gaussian for Differential
// Privacy" (2020). Every parameter is an exact ratio num/den; no floating
// point is involved. Bounds that leave the UniformP2 domain abort.

// Uniform draws uniformly from [0, n) by rejection from SampleP2(2n).
// Expected draws per sample are below two.
func Uniform(n uint64) kont.Eff[uint64] {
	if n == 0 {
		return fail[uint64]("Uniform", ErrZeroBound)
	}
	if n > math.MaxUint64/2 {
		return fail[uint64]("Uniform", ErrOverflow)
	}
	return Until(SampleP2(2*n), func(x uint64) bool { return x < n })
}

// Bernoulli returns true with probability num/den.
// Requires den > 0 and num <= den.
func Bernoulli(num, den uint64) kont.Eff[bool] {
	if den == 0 {
		return fail[bool]("Bernoulli", ErrZeroBound)
	}
	if num > den {
		return fail[bool]("Bernoulli", ErrDomain)
	}
	num, den = reduce(num, den)
	return kont.Map(Uniform(den), func(d uint64) bool { return d < num })
}

// expNegUnitState is the loop state of bernoulliExpNegUnit:
// the last Bernoulli outcome and the index of the next draw.
type expNegUnitState struct {
	ok bool
	k  uint64
}

// bernoulliExpNegUnit returns true with probability exp(-num/den) for
// num <= den: draw Bernoulli(γ/k) for k = 1, 2, ... until the first
// failure at index K, and accept when K is odd.
func bernoulliExpNegUnit(num, den uint64) kont.Eff[bool] {
	cond := func(s expNegUnitState) bool { return s.ok }
	body := func(s expNegUnitState) kont.Eff[expNegUnitState] {
		return kont.Map(Bernoulli(num, mul("BernoulliExpNeg", s.k, den)), func(a bool) expNegUnitState {
			return expNegUnitState{ok: a, k: s.k + 1}
		})
	}
	return kont.Map(RunWhile(cond, body, expNegUnitState{ok: true, k: 1}), func(s expNegUnitState) bool {
		return s.k%2 == 0
	})
}

// expNegIntState counts the remaining integer-part draws.
type expNegIntState struct {
	left uint64
	ok   bool
}

// BernoulliExpNeg returns true with probability exp(-num/den).
// Requires den > 0. The integer part of num/den is handled by repeated
// exp(-1) draws, the fractional part by one unit draw.
func BernoulliExpNeg(num, den uint64) kont.Eff[bool] {
	if den == 0 {
		return fail[bool]("BernoulliExpNeg", ErrZeroBound)
	}
	num, den = reduce(num, den)
	if num <= den {
		return bernoulliExpNegUnit(num, den)
	}
	cond := func(s expNegIntState) bool { return s.ok && s.left > 0 }
	body := func(s expNegIntState) kont.Eff[expNegIntState] {
		return kont.Map(bernoulliExpNegUnit(1, 1), func(b bool) expNegIntState {
			return expNegIntState{left: s.left - 1, ok: b}
		})
	}
	return WhileBind(cond, body, expNegIntState{left: num / den, ok: true}, func(s expNegIntState) kont.Eff[bool] {
		if !s.ok {
			return kont.Pure(false)
		}
		return bernoulliExpNegUnit(num%den, den)
	})
}

// Geometric returns the number of successes of BernoulliExpNeg(num, den)
// before its first failure: P(k) = (1-q) q^k with q = exp(-num/den).
// Requires num > 0 and den > 0.
func Geometric(num, den uint64) kont.Eff[uint64] {
	if num == 0 || den == 0 {
		return fail[uint64]("Geometric", ErrZeroBound)
	}
	cond := func(s expNegUnitState) bool { return s.ok }
	body := func(s expNegUnitState) kont.Eff[expNegUnitState] {
		return kont.Map(BernoulliExpNeg(num, den), func(a bool) expNegUnitState {
			return expNegUnitState{ok: a, k: s.k + 1}
		})
	}
	return kont.Map(RunWhile(cond, body, expNegUnitState{ok: true}), func(s expNegUnitState) uint64 {
		return s.k - 1
	})
}

// signed is a candidate Laplace sample: a magnitude and a sign bit.
type signed struct {
	neg bool
	mag uint64
}

// accepted rejects negative zero so that zero is not drawn twice as often.
func (s signed) accepted() bool { return !(s.neg && s.mag == 0) }

func (s signed) value() int64 {
	if s.mag > math.MaxInt64 {
		abort("DiscreteLaplace", ErrOverflow)
	}
	if s.neg {
		return -int64(s.mag)
	}
	return int64(s.mag)
}

// uniformPair is a uniform draw with its exp(-u/t) acceptance bit.
type uniformPair struct {
	u  uint64
	ok bool
}

// DiscreteLaplace samples the discrete Laplace distribution with scale
// num/den: P(z) ∝ exp(-|z| den/num). Requires num > 0 and den > 0.
func DiscreteLaplace(num, den uint64) kont.Eff[int64] {
	if num == 0 || den == 0 {
		return fail[int64]("DiscreteLaplace", ErrZeroBound)
	}
	num, den = reduce(num, den)
	// U uniform on [0, num) accepted with probability exp(-U/num).
	fraction := kont.Map(Until(
		kont.Bind(Uniform(num), func(u uint64) kont.Eff[uniformPair] {
			return kont.Map(BernoulliExpNeg(u, num), func(d bool) uniformPair { return uniformPair{u: u, ok: d} })
		}),
		func(p uniformPair) bool { return p.ok },
	), func(p uniformPair) uint64 { return p.u })

	candidate := kont.Bind(fraction, func(u uint64) kont.Eff[signed] {
		return kont.Bind(Geometric(1, 1), func(v uint64) kont.Eff[signed] {
			x := add("DiscreteLaplace", u, mul("DiscreteLaplace", num, v))
			return kont.Map(Bernoulli(1, 2), func(b bool) signed { return signed{neg: b, mag: x / den} })
		})
	})
	return kont.Map(Until(candidate, signed.accepted), signed.value)
}

// DiscreteLaplaceGeometric samples the same distribution as DiscreteLaplace
// by drawing the magnitude directly from Geometric(den, num). Cheaper for
// small scales, where the geometric loop is short.
func DiscreteLaplaceGeometric(num, den uint64) kont.Eff[int64] {
	if num == 0 || den == 0 {
		return fail[int64]("DiscreteLaplace", ErrZeroBound)
	}
	num, den = reduce(num, den)
	candidate := kont.Bind(Geometric(den, num), func(y uint64) kont.Eff[signed] {
		return kont.Map(Bernoulli(1, 2), func(b bool) signed { return signed{neg: b, mag: y} })
	})
	return kont.Map(Until(candidate, signed.accepted), signed.value)
}

// DiscreteLaplaceMixed uses DiscreteLaplaceGeometric when the scale
// num/den is at most mix and DiscreteLaplace otherwise.
// mix == 0 always selects DiscreteLaplace.
func DiscreteLaplaceMixed(num, den, mix uint64) kont.Eff[int64] {
	if den != 0 {
		if hi, lo := bits.Mul64(den, mix); hi == 0 && num <= lo {
			return DiscreteLaplaceGeometric(num, den)
		}
	}
	return DiscreteLaplace(num, den)
}

// gaussianCandidate is a Laplace draw with its Gaussian acceptance bit.
type gaussianCandidate struct {
	y  int64
	ok bool
}

// DiscreteGaussian samples the discrete Gaussian with σ = num/den:
// P(z) ∝ exp(-z²/2σ²). Candidates come from DiscreteLaplaceMixed with
// scale t = ⌊σ⌋+1 and are accepted with probability
// exp(-(|y| - σ²/t)² / 2σ²). Requires num > 0 and den > 0.
func DiscreteGaussian(num, den, mix uint64) kont.Eff[int64] {
	if num == 0 || den == 0 {
		return fail[int64]("DiscreteGaussian", ErrZeroBound)
	}
	num, den = reduce(num, den)
	t := num/den + 1
	const op = "DiscreteGaussian"
	num2 := mul(op, num, num)
	den2 := mul(op, den, den)
	// 2 num² t² den²
	bound := mul(op, 2, mul(op, num2, mul(op, mul(op, t, t), den2)))

	candidate := kont.Bind(DiscreteLaplaceMixed(t, 1, mix), func(y int64) kont.Eff[gaussianCandidate] {
		a := uint64(y)
		if y < 0 {
			a = uint64(-y)
		}
		// (|y| t den² - num²)²
		p := mul(op, a, mul(op, t, den2))
		var d uint64
		if p >= num2 {
			d = p - num2
		} else {
			d = num2 - p
		}
		e := mul(op, d, d)
		return kont.Map(BernoulliExpNeg(e, bound), func(c bool) gaussianCandidate {
			return gaussianCandidate{y: y, ok: c}
		})
	})
	return kont.Map(Until(candidate, func(c gaussianCandidate) bool { return c.ok }), func(c gaussianCandidate) int64 {
		return c.y
	})
}

// reduce divides num and den by their greatest common divisor.
func reduce(num, den uint64) (uint64, uint64) {
	a, b := num, den
	for b != 0 {
		a, b = b, a%b
	}
	if a <= 1 {
		return num, den
	}
	return num / a, den / a
}

// mul multiplies, aborting with ErrOverflow on wraparound.
func mul(op string, a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		abort(op, ErrOverflow)
	}
	return lo
}

// add adds, aborting with ErrOverflow on wraparound.
func add(op string, a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		abort(op, ErrOverflow)
	}
	return sum
}
