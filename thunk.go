// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"sync"
	"sync/atomic"
)

// Producer is a suspended computation. It yields either a final value or a
// further suspension via [Outcome], and may fail with an error.
type Producer[A any] func() (Outcome[A], error)

// Outcome is the closed tagged result of running a producer: either a final
// value ([Final]) or another cell that must be forced in turn ([Next]).
// The explicit tag replaces runtime cell-vs-value probing with a sum type
// dispatched exhaustively by [Thunk.Force].
type Outcome[A any] struct {
	next *Thunk[A]
	val  A
}

// Final creates an Outcome carrying a final value.
func Final[A any](a A) Outcome[A] {
	return Outcome[A]{val: a}
}

// Next creates an Outcome deferring to another cell.
// Forcing collapses the chain until a final value is reached.
func Next[A any](t *Thunk[A]) Outcome[A] {
	if t == nil {
		panic("lazy: Next called with nil cell")
	}
	return Outcome[A]{next: t}
}

// Thunk is a deferred value cell: a suspended computation evaluated at most
// once, whose result is memoized in a slot owned by the cell itself.
//
// The zero value is not useful; construct cells with [Defer], [DeferErr],
// [Suspend], or [Pure]. Cells are safe for concurrent forcing: the first
// force is a critical section, racing observers all receive the single
// memoized result.
type Thunk[A any] struct {
	done     atomic.Bool
	mu       sync.Mutex
	producer Producer[A]
	value    A
}

// Defer wraps a pure computation into a cell.
// No side effect occurs at creation time.
func Defer[A any](f func() A) *Thunk[A] {
	return &Thunk[A]{producer: func() (Outcome[A], error) {
		return Final(f()), nil
	}}
}

// DeferErr wraps a fallible computation into a cell.
// An error during forcing propagates to the caller and is not memoized.
func DeferErr[A any](f func() (A, error)) *Thunk[A] {
	return &Thunk[A]{producer: func() (Outcome[A], error) {
		a, err := f()
		if err != nil {
			return Outcome[A]{}, err
		}
		return Final(a), nil
	}}
}

// Suspend wraps a full producer into a cell. This is the primitive
// constructor: the producer may chain to another cell via [Next].
func Suspend[A any](p Producer[A]) *Thunk[A] {
	return &Thunk[A]{producer: p}
}

// Pure creates an already-memoized cell holding a.
// Forcing a Pure cell never runs any code.
func Pure[A any](a A) *Thunk[A] {
	t := &Thunk[A]{value: a}
	t.done.Store(true)
	return t
}

// Force resolves the cell to its underlying value.
//
// The first successful force runs the producer exactly once, collapses any
// chained suspension to a non-cell value, memoizes the result, and drops the
// producer reference so captured state can be collected. Every later force
// returns the memoized value without running code.
//
// A producer error (or panic) leaves the cell unmemoized: the failure is
// returned (or propagated) to the forcing call site and a later force runs
// the producer again. Only success is cached.
//
// A producer that forces its own cell deadlocks; cyclic cells are a caller
// error.
func (t *Thunk[A]) Force() (A, error) {
	if t.done.Load() {
		return t.value, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done.Load() {
		return t.value, nil
	}
	out, err := t.producer()
	if err != nil {
		var zero A
		return zero, err
	}
	v := out.val
	if out.next != nil {
		// Collapse the chain before memoizing: the memo slot never
		// holds an un-forced cell. Each link memoizes its own result.
		v, err = out.next.Force()
		if err != nil {
			var zero A
			return zero, err
		}
	}
	t.value = v
	t.producer = nil
	t.done.Store(true)
	return v, nil
}

// MustForce resolves the cell, panicking if the producer fails.
// Intended for cells built from pure computations ([Defer], [Pure]).
func (t *Thunk[A]) MustForce() A {
	v, err := t.Force()
	if err != nil {
		panic("lazy: forcing failed: " + err.Error())
	}
	return v
}

// Forced reports whether the cell has been memoized.
// A true result is stable; false may be outdated by a concurrent force.
func (t *Thunk[A]) Forced() bool {
	return t.done.Load()
}

// ForceEither resolves the cell into an [Either] instead of an error return.
func ForceEither[A any](t *Thunk[A]) Either[error, A] {
	v, err := t.Force()
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](v)
}

// Map applies a pure function to the result of a cell, without forcing it.
// The returned cell forces t on its own first force.
func Map[A, B any](t *Thunk[A], f func(A) B) *Thunk[B] {
	return Suspend(func() (Outcome[B], error) {
		a, err := t.Force()
		if err != nil {
			return Outcome[B]{}, err
		}
		return Final(f(a)), nil
	})
}

// Bind sequences two deferred computations (monadic bind).
// The returned cell forces t, then chains to the cell produced by f.
func Bind[A, B any](t *Thunk[A], f func(A) *Thunk[B]) *Thunk[B] {
	return Suspend(func() (Outcome[B], error) {
		a, err := t.Force()
		if err != nil {
			return Outcome[B]{}, err
		}
		return Next(f(a)), nil
	})
}

// Then sequences two cells, discarding the first result.
// Forcing the returned cell forces t (for its effects), then chains to u.
func Then[A, B any](t *Thunk[A], u *Thunk[B]) *Thunk[B] {
	return Suspend(func() (Outcome[B], error) {
		if _, err := t.Force(); err != nil {
			return Outcome[B]{}, err
		}
		return Next(u), nil
	})
}
