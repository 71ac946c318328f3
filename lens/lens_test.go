package lens

import (
	"math/rand"
	"testing"
)

type inner struct {
	X int
	Y string
}

type outer struct {
	In    inner
	Label string
}

func innerLens() Lens[outer, inner] {
	return New(
		func(o outer) inner { return o.In },
		func(o outer, in inner) outer { o.In = in; return o },
	)
}

func xLens() Lens[inner, int] {
	return New(
		func(in inner) int { return in.X },
		func(in inner, x int) inner { in.X = x; return in },
	)
}

func randomOuter(r *rand.Rand) outer {
	labels := []string{"", "a", "menu", "score", "zz"}
	return outer{
		In:    inner{X: r.Intn(1000) - 500, Y: labels[r.Intn(len(labels))]},
		Label: labels[r.Intn(len(labels))],
	}
}

func TestLensLaws(t *testing.T) {
	l := innerLens()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		w := randomOuter(r)
		p1 := randomOuter(r).In
		p2 := randomOuter(r).In

		if got := l.Set(w, l.Get(w)); got != w {
			t.Fatalf("GetSet violated: Set(w, Get(w)) = %+v, want %+v", got, w)
		}
		if got := l.Get(l.Set(w, p1)); got != p1 {
			t.Fatalf("SetGet violated: Get(Set(w, p)) = %+v, want %+v", got, p1)
		}
		if got, want := l.Set(l.Set(w, p1), p2), l.Set(w, p2); got != want {
			t.Fatalf("SetSet violated: got %+v, want %+v", got, want)
		}
	}
}

func TestComposedLensLaws(t *testing.T) {
	l := AndThen(innerLens(), xLens())
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		w := randomOuter(r)
		p1 := r.Intn(100)
		p2 := r.Intn(100)

		if got := l.Set(w, l.Get(w)); got != w {
			t.Fatalf("GetSet violated for composed lens: got %+v, want %+v", got, w)
		}
		if got := l.Get(l.Set(w, p1)); got != p1 {
			t.Fatalf("SetGet violated for composed lens: got %d, want %d", got, p1)
		}
		if got, want := l.Set(l.Set(w, p1), p2), l.Set(w, p2); got != want {
			t.Fatalf("SetSet violated for composed lens: got %+v, want %+v", got, want)
		}
	}
}

func TestComposedGetMatchesNestedGets(t *testing.T) {
	lo, li := innerLens(), xLens()
	composed := AndThen(lo, li)
	w := outer{In: inner{X: 7, Y: "y"}, Label: "l"}
	if got, want := composed.Get(w), li.Get(lo.Get(w)); got != want {
		t.Fatalf("composed get = %d, want %d", got, want)
	}
	next := composed.Set(w, 42)
	if next.In.X != 42 {
		t.Fatalf("composed set should reach nested field, got %d", next.In.X)
	}
	if next.In.Y != "y" || next.Label != "l" {
		t.Fatalf("composed set must not disturb sibling fields: %+v", next)
	}
}

func TestCompositionAssociative(t *testing.T) {
	type leaf struct{ N int }
	type mid struct{ L leaf }
	type top struct{ M mid }

	lm := New(
		func(t top) mid { return t.M },
		func(t top, m mid) top { t.M = m; return t },
	)
	ll := New(
		func(m mid) leaf { return m.L },
		func(m mid, l leaf) mid { m.L = l; return m },
	)
	ln := New(
		func(l leaf) int { return l.N },
		func(l leaf, n int) leaf { l.N = n; return l },
	)

	left := AndThen(AndThen(lm, ll), ln)
	right := AndThen(lm, AndThen(ll, ln))

	w := top{M: mid{L: leaf{N: 3}}}
	for _, n := range []int{0, -4, 99} {
		if got, want := left.Set(w, n), right.Set(w, n); got != want {
			t.Fatalf("associativity violated on set(%d): %+v vs %+v", n, got, want)
		}
		if got, want := left.Get(right.Set(w, n)), right.Get(left.Set(w, n)); got != want {
			t.Fatalf("associativity violated on get after set(%d)", n)
		}
	}
}

func TestIdentityIsUnit(t *testing.T) {
	l := innerLens()
	id := Identity[outer]()
	w := outer{In: inner{X: 1, Y: "u"}, Label: "unit"}
	p := inner{X: 9, Y: "v"}

	leftUnit := AndThen(id, l)
	rightUnit := AndThen(l, Identity[inner]())

	if got := leftUnit.Get(w); got != l.Get(w) {
		t.Fatalf("identity not a left unit on get: %+v", got)
	}
	if got := leftUnit.Set(w, p); got != l.Set(w, p) {
		t.Fatalf("identity not a left unit on set: %+v", got)
	}
	if got := rightUnit.Get(w); got != l.Get(w) {
		t.Fatalf("identity not a right unit on get: %+v", got)
	}
	if got := rightUnit.Set(w, p); got != l.Set(w, p) {
		t.Fatalf("identity not a right unit on set: %+v", got)
	}
}

func TestModifyEqualsSetOfGet(t *testing.T) {
	l := AndThen(innerLens(), xLens())
	w := outer{In: inner{X: 10}}
	double := func(x int) int { return x * 2 }
	if got, want := l.Modify(w, double), l.Set(w, double(l.Get(w))); got != want {
		t.Fatalf("Modify = %+v, want %+v", got, want)
	}
	if got := l.Modify(w, double).In.X; got != 20 {
		t.Fatalf("Modify result = %d, want 20", got)
	}
}
