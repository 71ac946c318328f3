// Package lens provides pure, composable, bidirectional accessors
// between a whole value and one of its parts.
//
// A Lens pairs a getter with a setter over a whole/part pair. Every
// lens handed to this package is expected to satisfy the three lens
// laws:
//
//	GetSet: Set(w, Get(w)) == w
//	SetGet: Get(Set(w, p)) == p
//	SetSet: Set(Set(w, p1), p2) == Set(w, p2)
//
// The laws are a correctness precondition, not a runtime check; they
// are exercised by the package's property tests. Lenses built from
// partial accessors (indexing into variable-size containers) are out
// of scope: a lens must target an always-present field.
package lens

// Lens is an immutable get/set pair focusing a part P inside a whole
// W. Both functions must be pure and total. Set returns a new whole
// and never mutates its argument; structural sharing is left to the
// functions themselves.
type Lens[W, P any] struct {
	get func(W) P
	set func(W, P) W
}

// New builds a Lens from a getter and a setter.
func New[W, P any](get func(W) P, set func(W, P) W) Lens[W, P] {
	return Lens[W, P]{get: get, set: set}
}

// Get extracts the focused part from the whole.
func (l Lens[W, P]) Get(w W) P { return l.get(w) }

// Set writes the part into the whole and returns the new whole.
func (l Lens[W, P]) Set(w W, p P) W { return l.set(w, p) }

// Modify applies f to the focused part. It is defined strictly as
// Set(w, f(Get(w))) and is never special-cased.
func (l Lens[W, P]) Modify(w W, f func(P) P) W {
	return l.set(w, f(l.get(w)))
}

// AndThen composes two lenses, focusing C inside A by way of B.
// Composition is associative and Identity is a two-sided unit, so
// lenses form a category; this is what lets arbitrarily deep nested
// updates run without the container knowing the leaf's structure.
//
// This is a free function rather than a method because Go methods
// cannot introduce new type parameters.
func AndThen[A, B, C any](outer Lens[A, B], inner Lens[B, C]) Lens[A, C] {
	return Lens[A, C]{
		get: func(a A) C { return inner.get(outer.get(a)) },
		set: func(a A, c C) A {
			return outer.set(a, inner.set(outer.get(a), c))
		},
	}
}

// Identity focuses the whole itself.
func Identity[W any]() Lens[W, W] {
	return Lens[W, W]{
		get: func(w W) W { return w },
		set: func(_ W, p W) W { return p },
	}
}
