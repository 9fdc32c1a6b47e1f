// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"sync"

	"code.hybscloud.com/atomix"
	"github.com/seehuhn/mt19937"
)

// DefaultSeed seeds the process-wide source.
// 5489 is the seed of a default-constructed 64-bit Mersenne Twister.
const DefaultSeed = 5489

// Source is a seeded 64-bit Mersenne Twister owned by one evaluator.
//
// A Source is not safe for concurrent draws. Share work across goroutines
// by giving each goroutine its own Source (see [SeedFor] and [Trials]).
// Draws may be read from any goroutine.
type Source struct {
	mt     *mt19937.MT19937
	seed   uint64
	stream Stream
	draws  atomix.Uint64
}

// NewSource creates a Source seeded with seed.
// The generator is seeded exactly once and never reset.
func NewSource(seed uint64) *Source {
	mt := mt19937.New()
	mt.Seed(int64(seed))
	return &Source{mt: mt, seed: seed, stream: nextStream()}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 { return s.seed }

// Draws returns the number of 64-bit words consumed so far.
func (s *Source) Draws() uint64 { return s.draws.Load() }

// Uint64 draws one uniformly distributed 64-bit word.
func (s *Source) Uint64() uint64 {
	s.draws.Add(1)
	return s.mt.Uint64()
}

// IntRange draws a value uniformly distributed over [lo, hi].
// Uses mask-and-reject: when hi-lo+1 is a power of two every draw is
// accepted, so exactly one word is consumed. Panics if lo > hi.
func (s *Source) IntRange(lo, hi uint64) uint64 {
	if lo > hi {
		panic("prob: empty range")
	}
	span := hi - lo
	if span == math.MaxUint64 {
		return s.Uint64()
	}
	mask := uint64(1)<<bits.Len64(span) - 1
	for {
		if v := s.Uint64() & mask; v <= span {
			return lo + v
		}
	}
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Default returns the process-wide source, creating it with [DefaultSeed]
// on first use. Evaluation on it is serialized by [Run] and [RunExpr].
func Default() *Source {
	defaultOnce.Do(func() {
		defaultSource = NewSource(DefaultSeed)
	})
	return defaultSource
}

// NewSeed returns a high-entropy seed read from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
