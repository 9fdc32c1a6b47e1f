// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package prob provides probabilistic computations via algebraic effects
// on [code.hybscloud.com/kont].
//
// A computation is a suspended program that, when forced against a
// [Source], yields one sample. Computations are built from a single
// primitive sampler and composed monadically.
//
// # Architecture
//
//   - Entropy: [Source] wraps a seeded 64-bit Mersenne Twister. [Default] is the process-wide source seeded with [DefaultSeed].
//   - Primitive: [UniformP2] draws uniformly from [0, [RangeP2](n)), consuming exactly one word per successful draw.
//   - Loops: [While] is dispatched iteratively by the handler, so long rejection loops run in constant stack.
//   - Failures: precondition violations panic with a [*Fault]. They are not recoverable results.
//   - Execution: Dual-world API supporting closure-based (Cont-world) and defunctionalized (Expr-world) evaluation.
//
// # API Topologies
//
//   - Operations: [UniformP2], [While], [WhileExpr].
//   - Cont-world: [SampleP2], [SampleP2Bind], [Pure], [Bind], [Map], [Then], [RunWhile], [WhileBind], [Until], [Loop].
//   - Expr-world: [ExprSampleP2], [ExprSampleP2Bind], [ExprPure], [ExprBind], [ExprRunWhile], [ExprUntil], [ExprLoop]. Bridge via [Reify] and [Reflect].
//   - Derived samplers: [Uniform], [Bernoulli], [BernoulliExpNeg], [Geometric], [DiscreteLaplace], [DiscreteGaussian].
//
// # Integration
//
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError]) evaluate computations one effect at a time.
//   - Forcing: [Exec] and [ExecExpr] on an explicit source, [Run] and [RunExpr] on the default source.
//   - Parallel: [Trials] forces a computation repeatedly on per-worker sources derived with [SeedFor].
//   - Host: package host exposes the primitives to a host runtime with boxed values and closures.
//
// # Example
//
//	die := prob.Uniform(6)
//	r := prob.Run(prob.Map(die, func(x uint64) uint64 { return x + 1 }))
//	fmt.Println(r.Value)
package prob
