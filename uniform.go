// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"
	"math/bits"
)

// MaxScalar is the largest bound representable as a host boxed scalar.
const MaxScalar = math.MaxUint64 >> 1

// MaxBits bounds the power-of-two range: bounds with bit length above
// MaxBits are rejected instead of approximated.
const MaxBits = 30

// RangeP2 returns the exclusive upper limit 2^k sampled for bound n,
// where k is the index of the highest set bit of n.
// For n that is not a power of two the range is rounded down:
// RangeP2(5) == 4. Returns 0 for n == 0.
func RangeP2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return uint64(1) << (bits.Len64(n) - 1)
}

// UniformP2 draws uniformly from [0, RangeP2(n)).
//
// Checks run in order: n beyond MaxScalar (ErrScalarBound), n == 0
// (ErrZeroBound), highest set bit at or above MaxBits (ErrLargeBound).
// On success exactly one word is drawn.
func (s *Source) UniformP2(n uint64) (uint64, error) {
	if n > MaxScalar {
		return 0, ErrScalarBound
	}
	if n == 0 {
		return 0, ErrZeroBound
	}
	k := bits.Len64(n) - 1
	if k >= MaxBits {
		return 0, ErrLargeBound
	}
	return s.IntRange(0, uint64(1)<<k-1), nil
}
