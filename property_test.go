// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/lazy"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randSlice returns a random int slice of length [0, 32].
func randSlice(rng *rand.Rand) []int {
	n := rng.IntN(33)
	xs := make([]int, n)
	for i := range xs {
		xs[i] = randInt(rng)
	}
	return xs
}

// TestPropertyForceIdempotent: Force(c) twice yields the same value with one evaluation.
func TestPropertyForceIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		calls := 0
		c := lazy.Defer(func() int {
			calls++
			return a * 3
		})
		first := c.MustForce()
		second := c.MustForce()
		if first != second || calls != 1 {
			t.Fatalf("idempotence: first=%d second=%d calls=%d (a=%d)", first, second, calls, a)
		}
	}
}

// TestPropertyMapComposition: Map(Map(c, f), g) ≡ Map(c, Compose(f, g))
func TestPropertyMapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) int { return x + 3 }
		g := func(x int) int { return x * 2 }
		left := lazy.Map(lazy.Map(lazy.Pure(a), f), g).MustForce()
		right := lazy.Map(lazy.Pure(a), lazy.Compose(f, g)).MustForce()
		if left != right {
			t.Fatalf("map composition: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyBindLeftIdentity: Bind(Pure(a), f) ≡ f(a)
func TestPropertyBindLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) *lazy.Thunk[int] { return lazy.Pure(x * 3) }
		left := lazy.Bind(lazy.Pure(a), f).MustForce()
		right := f(a).MustForce()
		if left != right {
			t.Fatalf("bind left identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyRunBodyEqualsNativeFold: RunBody right fold ≡ native recursive right fold.
func TestPropertyRunBodyEqualsNativeFold(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randSlice(rng)
		got := lazy.RunBody(subRightStep, xs)
		want := subRightNative(xs, 0)
		if got != want {
			t.Fatalf("right fold: got %d, want %d (xs=%v)", got, want, xs)
		}
	}
}

// TestPropertyFoldStreamEqualsLoop: FoldStream over FromSlice ≡ plain loop.
func TestPropertyFoldStreamEqualsLoop(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randSlice(rng)
		got := lazy.FoldStream(lazy.FromSlice(xs), 0, func(acc, x int) int { return acc + x })
		want := 0
		for _, x := range xs {
			want += x
		}
		if got != want {
			t.Fatalf("stream fold: got %d, want %d (xs=%v)", got, want, xs)
		}
	}
}

// TestPropertyStreamRoundTrip: FromSlice(xs).ToSlice() ≡ xs
func TestPropertyStreamRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randSlice(rng)
		got := lazy.FromSlice(xs).ToSlice()
		if len(got) != len(xs) {
			t.Fatalf("round trip length: got %d, want %d", len(got), len(xs))
		}
		for i := range xs {
			if got[i] != xs[i] {
				t.Fatalf("round trip at %d: got %d, want %d", i, got[i], xs[i])
			}
		}
	}
}
