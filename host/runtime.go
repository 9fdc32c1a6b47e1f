// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

// Runtime is the set of primitives consumed from the host.
type Runtime interface {
	// Apply invokes closure f with args and returns its result.
	Apply(f Value, args ...Value) Value
	// Panic terminates with msg. It must not return.
	Panic(msg string)
	// OK wraps v as a successful effect result.
	OK(v Value) Value
}

// Abort is the panic value raised by Native.Panic.
type Abort struct {
	Msg string
}

func (a *Abort) Error() string { return a.Msg }

// IOResult is the effect result built by Native.OK.
type IOResult struct {
	Value Value
}

// Native is the Go-hosted Runtime: closures are Func values and aborts
// are panics carrying *Abort.
type Native struct{}

// Apply implements Runtime. Applying a non-closure panics.
func (Native) Apply(f Value, args ...Value) Value {
	fn, ok := f.Data.(Func)
	if f.Tag != TagClosure || !ok {
		panic("host: apply of non-closure value")
	}
	return fn(args...)
}

// Panic implements Runtime.
func (Native) Panic(msg string) {
	panic(&Abort{Msg: msg})
}

// OK implements Runtime.
func (Native) OK(v Value) Value {
	return Object(&IOResult{Value: v})
}
