// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import "code.hybscloud.com/atomix"

// Stream is a monotonically increasing source identifier.
// Each call to NewSource assigns the next stream value.
type Stream = uint64

// counter is the global monotonic counter for source streams.
var counter atomix.Uint64

// nextStream returns the next monotonically increasing stream.
func nextStream() Stream {
	return counter.Add(1)
}

// Stream returns the stream identifier assigned to this source.
func (s *Source) Stream() Stream {
	return s.stream
}

// SeedFor derives the seed of an independent stream from a base seed.
// Distinct streams of the same base yield well-separated seeds, so
// per-worker sources never share a generator sequence.
func SeedFor(base, stream uint64) uint64 {
	return splitmix64(base ^ splitmix64(stream))
}

// splitmix64 is the SplitMix64 finalizer (Steele, Lea, Flood 2014).
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
