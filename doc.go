// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazy provides deferred evaluation cells and bounded-stack
// recursion runners in Go.
//
// The two mechanisms are independent leaf utilities. [Thunk] emulates
// call-by-need on top of Go's eager evaluation order: a computation is
// suspended at creation, evaluated at most once on first forcing, and its
// result is memoized and shared by every later observer. [RunTail] and
// [RunBody] convert self-referential step sequences into iterative loops
// that do not grow the call stack with recursion depth.
//
// # Design Philosophy
//
// lazy provides:
//   - Explicit forcing: a cell is resolved by calling [Thunk.Force], never
//     by implicit interception of access
//   - Closed tagged variants ([Outcome], [Step]) with exhaustive dispatch
//     instead of runtime type probing
//   - Per-cell owned memoization state, one allocation per cell, no global
//     caches
//
// # Deferred Value Cells
//
// Constructors:
//
//   - [Defer]: Suspend a pure computation
//   - [DeferErr]: Suspend a fallible computation
//   - [Suspend]: Primitive constructor from a [Producer]; may chain to
//     another cell via [Next]
//   - [Pure]: Pre-memoized cell; forcing never runs code
//
// Forcing:
//
//   - [Thunk.Force]: Resolve to the underlying value, running the producer
//     exactly once on first success and collapsing chained suspensions
//   - [Thunk.MustForce]: Panicking variant for pure cells
//   - [Thunk.Forced]: Memoization observer
//   - [ForceEither]: Resolve into an [Either] instead of an error return
//
// Combinators:
//
//   - [Map]: Transform the eventual value, keeping the suspension
//   - [Bind]: Sequence two deferred computations
//   - [Then]: Sequence, discarding the first result
//
// Failure is never cached: a producer error or panic leaves the cell
// unmemoized and a later force retries. Only success memoizes. The first
// force is a critical section, so cells shared across goroutines still
// evaluate exactly once and all racing observers receive the same value.
//
// # Recursion Runners
//
// A step function maps the current argument tuple to a [Step] descriptor:
//
//   - [Done]: Final result reached
//   - [Continue]: Iterate with the next argument tuple
//   - [ContinueWith]: Iterate and register a post-processing function for
//     the unwind phase
//
// Runners:
//
//   - [RunTail]: Tail recursion as a loop; constant stack, constant memory
//   - [RunBody]: Body recursion; descent collects post functions, then
//     replays them in reverse after the base case — constant stack, memory
//     proportional to depth. A post function may short-circuit the replay.
//
// Recursion in more than one position per step (naive Fibonacci) is not
// expressible through a single step sequence; restructure with an explicit
// worklist. The runners never validate termination: a step sequence that
// keeps producing Continue is valid unbounded iteration.
//
// # Streams
//
// [Stream] is a corecursive sequence of memoized cells, the standard
// consumer of both mechanisms: nodes are cells, the folds run on the
// runners.
//
//   - [EmptyStream], [ConsStream], [Unfold], [Iterate], [FromSlice]:
//     Constructors
//   - [Stream.Head], [Stream.Tail], [Stream.IsEmpty], [Stream.Take],
//     [Stream.ToSlice], [Stream.All]: Observers
//   - [MapStream], [FilterStream], [TakeWhileStream]: Lazy transformers
//   - [FoldStream]: Left fold on [RunTail]
//   - [FoldRightStream]: Right fold on [RunBody]
//
// # Either Type
//
// [Either] represents failure (Left) or success (Right):
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither], [FlatMapEither]: Functor map and monadic bind over Right
//
// # Example
//
//	calls := 0
//	cell := lazy.Defer(func() int {
//		calls++
//		return 21 * 2
//	})
//
//	a := cell.MustForce() // producer runs here
//	b := cell.MustForce() // memoized, producer not run again
//	// a == 42, b == 42, calls == 1
//
//	fact := lazy.RunTail(func(st [2]int) lazy.Step[[2]int, int] {
//		acc, n := st[0], st[1]
//		if n == 0 {
//			return lazy.Done[[2]int](acc)
//		}
//		return lazy.Continue[[2]int, int]([2]int{acc * n, n - 1})
//	}, [2]int{1, 5})
//	// fact == 120
package lazy
