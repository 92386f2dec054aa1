// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Step is the closed tagged descriptor produced by a recursion step function.
// It has three variants:
//
//   - [Done]: the recursion is complete, carrying the final result
//   - [Continue]: iterate again with the next argument tuple
//   - [ContinueWith]: like Continue, additionally carrying a post-processing
//     function replayed during the unwind phase of [RunBody]
//
// Type parameters:
//   - A: argument tuple type threaded through iterations
//   - R: final result type
type Step[A, R any] struct {
	done   bool
	next   A
	result R
	post   func(R) (R, bool)
}

// Done creates a terminal step carrying the final result.
func Done[A, R any](r R) Step[A, R] {
	return Step[A, R]{done: true, result: r}
}

// Continue creates a step that iterates again with the next argument tuple.
func Continue[A, R any](next A) Step[A, R] {
	return Step[A, R]{next: next}
}

// ContinueWith creates a step that iterates with the next argument tuple and
// registers a post-processing function for the unwind phase of [RunBody].
//
// During replay, post receives the running result and returns (r, true) to
// keep unwinding with r, or (r, false) to short-circuit: replay stops
// immediately and r becomes the final result.
func ContinueWith[A, R any](next A, post func(R) (R, bool)) Step[A, R] {
	if post == nil {
		panic("lazy: ContinueWith called with nil post function")
	}
	return Step[A, R]{next: next, post: post}
}

// RunTail drives a tail-recursive step sequence iteratively.
//
// step is invoked with the current argument tuple; a [Continue] result
// replaces the tuple and iterates, a [Done] result terminates the loop. The
// loop is iterative, so no call-stack growth occurs across iterations
// regardless of depth. A sequence that never produces Done runs forever;
// termination is the caller's responsibility.
//
// Panics on a [ContinueWith] descriptor: the tail runner has no unwind
// phase. Use [RunBody] for recursion with post-processing.
func RunTail[A, R any](step func(A) Step[A, R], initial A) R {
	args := initial
	for {
		s := step(args)
		if s.done {
			return s.result
		}
		if s.post != nil {
			panic("lazy: post-processing step in tail runner - use RunBody")
		}
		args = s.next
	}
}

// RunBody drives a body-recursive step sequence without consuming call-stack
// frames proportional to depth.
//
// The descent phase iterates like [RunTail], collecting the post-processing
// functions of [ContinueWith] steps in call order. Once [Done] is reached,
// the collected functions are replayed in reverse (most-recently-collected
// first), each feeding its result to the next — the unwind phase of ordinary
// body recursion, paid for in memory proportional to depth instead of stack.
//
// A post function returning (r, false) short-circuits the replay: r is
// returned immediately and earlier-collected functions are never invoked.
//
// Steps recursive in more than one position (e.g. naive Fibonacci) are not
// expressible as a single step sequence; restructure such recursion with an
// explicit worklist before using the runner.
func RunBody[A, R any](step func(A) Step[A, R], initial A) R {
	args := initial
	var unwind []func(R) (R, bool)
	for {
		s := step(args)
		if s.done {
			r := s.result
			for i := len(unwind) - 1; i >= 0; i-- {
				var more bool
				r, more = unwind[i](r)
				if !more {
					return r
				}
			}
			return r
		}
		if s.post != nil {
			unwind = append(unwind, s.post)
		}
		args = s.next
	}
}
