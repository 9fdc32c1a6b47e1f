// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package host exposes the probabilistic primitives of package prob to a
// host language runtime.
//
// Host data is modeled by [Value]: small naturals are boxed scalars,
// everything else is an object or a closure. A computation is a closure
// applied to the execution token [World]; [Boundary] forces computations
// only through the host's [Runtime].
package host

import (
	"fmt"
	"math/big"
	"strconv"

	"code.hybscloud.com/prob"
)

// Tag enumerates the host representations a Value may carry.
type Tag uint8

const (
	TagScalar  Tag = iota // uint64 ≤ MaxScalar, encoded inline
	TagObject             // heap datum (e.g. *big.Int, *IOResult)
	TagClosure            // Func
)

// MaxScalar is the largest natural encoded inline.
const MaxScalar = prob.MaxScalar

// Value is a host-managed datum.
//
// Invariants:
//   - When Tag==TagScalar, Data is a uint64 no larger than MaxScalar.
//   - When Tag==TagClosure, Data is a Func.
//   - Naturals above MaxScalar are objects holding *big.Int (see Nat).
type Value struct {
	Tag  Tag
	Data any
}

// Func is a host closure. The last argument of a computation closure is
// the execution token [World].
type Func func(args ...Value) Value

// World is the implicit execution token passed to computations.
var World = Value{Tag: TagScalar, Data: uint64(0)}

// Box encodes n inline. Panics if n exceeds MaxScalar; use Nat for
// arbitrary naturals.
func Box(n uint64) Value {
	if n > MaxScalar {
		panic("host: Box of non-scalar natural")
	}
	return Value{Tag: TagScalar, Data: n}
}

// Nat encodes n inline when it fits, and as a heap *big.Int otherwise.
func Nat(n uint64) Value {
	if n <= MaxScalar {
		return Box(n)
	}
	return Object(new(big.Int).SetUint64(n))
}

// Bool encodes b as the boxed scalar 1 or 0.
func Bool(b bool) Value {
	if b {
		return Box(1)
	}
	return Box(0)
}

// Object wraps a heap datum.
func Object(data any) Value { return Value{Tag: TagObject, Data: data} }

// Closure wraps f as a closure value.
func Closure(f Func) Value { return Value{Tag: TagClosure, Data: f} }

// IsScalar reports whether v is a boxed scalar.
func (v Value) IsScalar() bool { return v.Tag == TagScalar }

// Unbox returns the inline natural of a boxed scalar.
// Unboxing any other representation is a representation violation and
// panics with a *prob.Fault wrapping prob.ErrNotScalar.
func (v Value) Unbox() uint64 {
	n, ok := v.Data.(uint64)
	if v.Tag != TagScalar || !ok {
		panic(&prob.Fault{Op: "Unbox", Err: prob.ErrNotScalar})
	}
	return n
}

// String renders a debug representation.
func (v Value) String() string {
	switch v.Tag {
	case TagScalar:
		return strconv.FormatUint(v.Unbox(), 10)
	case TagClosure:
		return "<closure>"
	default:
		return fmt.Sprintf("<object %v>", v.Data)
	}
}
