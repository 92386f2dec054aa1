// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import "iter"

// Stream is a corecursive sequence built on deferred value cells: each node
// (head plus tail) is computed on first observation and memoized, so a
// stream element is produced at most once no matter how many consumers walk
// the same stream value. Streams may be infinite; only the observed prefix
// is ever materialized.
//
// The zero value is the empty stream.
type Stream[A any] struct {
	cell *Thunk[streamNode[A]]
}

// streamNode is the forced shape of one stream cell.
// empty marks the end of the sequence; head/tail are valid otherwise.
type streamNode[A any] struct {
	tail  Stream[A]
	head  A
	empty bool
}

func (s Stream[A]) node() streamNode[A] {
	if s.cell == nil {
		return streamNode[A]{empty: true}
	}
	return s.cell.MustForce()
}

// EmptyStream creates a stream with no elements.
func EmptyStream[A any]() Stream[A] {
	return Stream[A]{}
}

// ConsStream prepends head to the stream produced by tail.
// tail is not invoked until the node past head is observed.
func ConsStream[A any](head A, tail func() Stream[A]) Stream[A] {
	return Stream[A]{cell: Defer(func() streamNode[A] {
		return streamNode[A]{head: head, tail: tail()}
	})}
}

// Unfold generates a stream from a seed. gen returns the next element, the
// next seed, and whether an element was produced; returning false ends the
// stream. gen is invoked once per observed element.
func Unfold[S, A any](seed S, gen func(S) (A, S, bool)) Stream[A] {
	return Stream[A]{cell: Defer(func() streamNode[A] {
		a, next, ok := gen(seed)
		if !ok {
			return streamNode[A]{empty: true}
		}
		return streamNode[A]{head: a, tail: Unfold(next, gen)}
	})}
}

// Iterate generates the infinite stream a, f(a), f(f(a)), ...
func Iterate[A any](a A, f func(A) A) Stream[A] {
	return Unfold(a, func(x A) (A, A, bool) {
		return x, f(x), true
	})
}

// FromSlice creates a finite stream over the elements of items.
// The slice is not copied; it must not be mutated while the stream is alive.
func FromSlice[A any](items []A) Stream[A] {
	return Unfold(0, func(i int) (A, int, bool) {
		if i >= len(items) {
			var zero A
			return zero, 0, false
		}
		return items[i], i + 1, true
	})
}

// IsEmpty reports whether the stream has no elements.
// Forces the first node.
func (s Stream[A]) IsEmpty() bool {
	return s.node().empty
}

// Head returns the first element and true, or zero and false on an empty
// stream. Forces the first node.
func (s Stream[A]) Head() (A, bool) {
	n := s.node()
	if n.empty {
		var zero A
		return zero, false
	}
	return n.head, true
}

// Tail returns the stream past the first element.
// The tail of an empty stream is empty. Forces the first node.
func (s Stream[A]) Tail() Stream[A] {
	n := s.node()
	if n.empty {
		return Stream[A]{}
	}
	return n.tail
}

// Take bounds the stream to its first n elements, lazily.
// Take on an infinite stream is the standard way to observe a finite prefix.
func (s Stream[A]) Take(n int) Stream[A] {
	return Stream[A]{cell: Defer(func() streamNode[A] {
		if n <= 0 {
			return streamNode[A]{empty: true}
		}
		nd := s.node()
		if nd.empty {
			return nd
		}
		return streamNode[A]{head: nd.head, tail: nd.tail.Take(n - 1)}
	})}
}

// foldState is the argument tuple threaded through the stream fold runners.
type foldState[A, R any] struct {
	s   Stream[A]
	acc R
}

// ToSlice forces the whole stream into a slice.
// Runs on the tail runner, so arbitrarily long finite streams materialize
// without stack growth. Does not terminate on an infinite stream.
func (s Stream[A]) ToSlice() []A {
	return RunTail(func(st foldState[A, []A]) Step[foldState[A, []A], []A] {
		n := st.s.node()
		if n.empty {
			return Done[foldState[A, []A]](st.acc)
		}
		return Continue[foldState[A, []A], []A](foldState[A, []A]{s: n.tail, acc: append(st.acc, n.head)})
	}, foldState[A, []A]{s: s})
}

// All bridges the stream to the standard pull-iteration protocol,
// yielding elements in order until the stream ends or the consumer stops.
func (s Stream[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		cur := s
		for {
			n := cur.node()
			if n.empty {
				return
			}
			if !yield(n.head) {
				return
			}
			cur = n.tail
		}
	}
}

// MapStream applies f to each element, lazily.
// f runs once per observed element, at the moment the element is observed.
func MapStream[A, B any](s Stream[A], f func(A) B) Stream[B] {
	return Stream[B]{cell: Defer(func() streamNode[B] {
		n := s.node()
		if n.empty {
			return streamNode[B]{empty: true}
		}
		return streamNode[B]{head: f(n.head), tail: MapStream(n.tail, f)}
	})}
}

// FilterStream keeps the elements satisfying keep, lazily.
// Forcing a filtered node scans the source iteratively until a match or the
// end of the source; filtering an infinite stream with an unsatisfiable
// predicate does not terminate.
func FilterStream[A any](s Stream[A], keep func(A) bool) Stream[A] {
	return Stream[A]{cell: Defer(func() streamNode[A] {
		cur := s
		for {
			n := cur.node()
			if n.empty {
				return streamNode[A]{empty: true}
			}
			if keep(n.head) {
				return streamNode[A]{head: n.head, tail: FilterStream(n.tail, keep)}
			}
			cur = n.tail
		}
	})}
}

// TakeWhileStream keeps the longest prefix whose elements satisfy keep.
func TakeWhileStream[A any](s Stream[A], keep func(A) bool) Stream[A] {
	return Stream[A]{cell: Defer(func() streamNode[A] {
		n := s.node()
		if n.empty || !keep(n.head) {
			return streamNode[A]{empty: true}
		}
		return streamNode[A]{head: n.head, tail: TakeWhileStream(n.tail, keep)}
	})}
}

// FoldStream reduces the stream left to right on the tail runner.
// Constant stack regardless of length; does not terminate on an infinite
// stream.
func FoldStream[A, R any](s Stream[A], seed R, f func(R, A) R) R {
	return RunTail(func(st foldState[A, R]) Step[foldState[A, R], R] {
		n := st.s.node()
		if n.empty {
			return Done[foldState[A, R]](st.acc)
		}
		return Continue[foldState[A, R], R](foldState[A, R]{s: n.tail, acc: f(st.acc, n.head)})
	}, foldState[A, R]{s: s, acc: seed})
}

// FoldRightStream reduces the stream right to left on the body runner:
// f(x0, f(x1, ... f(xn, seed))). The unwind sequence grows with the stream
// length, the call stack does not.
func FoldRightStream[A, R any](s Stream[A], seed R, f func(A, R) R) R {
	return RunBody(func(cur Stream[A]) Step[Stream[A], R] {
		n := cur.node()
		if n.empty {
			return Done[Stream[A]](seed)
		}
		head := n.head
		return ContinueWith(n.tail, func(r R) (R, bool) {
			return f(head, r), true
		})
	}, s)
}
