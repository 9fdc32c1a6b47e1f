// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prob

import (
	"errors"

	"code.hybscloud.com/kont"
)

// Unsupported-domain and representation errors.
// They are never returned by computations: dispatch wraps them in a
// [*Fault] and panics at the point of detection.
var (
	// ErrZeroBound reports a sampling bound of zero.
	ErrZeroBound = errors.New("n == 0")
	// ErrScalarBound reports a bound beyond the host small-scalar encoding.
	ErrScalarBound = errors.New("very large values unsupported")
	// ErrLargeBound reports a bound whose bit length reaches MaxBits.
	ErrLargeBound = errors.New("large values unsupported")
	// ErrNotScalar reports a value that was expected to be a boxed scalar.
	ErrNotScalar = errors.New("value is not a boxed scalar")
	// ErrDomain reports a derived sampler parameter outside its domain,
	// e.g. a Bernoulli probability numerator larger than its denominator.
	ErrDomain = errors.New("parameter out of domain")
	// ErrOverflow reports derived sampler arithmetic that would wrap.
	ErrOverflow = errors.New("arithmetic overflow")
)

// Fault is the unrecoverable failure raised when a caller violates a
// sampling precondition. It is delivered by panic and unwinds to the
// process boundary; nothing in this module recovers it.
type Fault struct {
	Op  string
	Err error
}

func (f *Fault) Error() string {
	return "prob: " + f.Op + ": " + f.Err.Error()
}

func (f *Fault) Unwrap() error { return f.Err }

// abort panics with a Fault for op.
// Extracted as a noinline function so that dispatch paths stay small.
//
//go:noinline
func abort(op string, err error) {
	panic(&Fault{Op: op, Err: err})
}

// fail returns a computation that aborts with a Fault when forced.
// Precondition checks in constructors use it so that violations surface
// at evaluation time, like every other sampling failure.
func fail[A any](op string, err error) kont.Eff[A] {
	return func(func(A) kont.Resumed) kont.Resumed {
		abort(op, err)
		return nil
	}
}
