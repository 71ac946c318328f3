package scene

import "github.com/jask/stagehand/lens"

// Name identifies a scene. Names are opaque, comparable, and must be
// unique within a Registry.
type Name string

// Scene is the erased capability set the dispatcher works against,
// parameterized only over the global model M and global view V. Go
// has no existential associated types, so the scene-local model and
// view types are hidden behind a typed Desc: the erased methods run
// the lens round-trip lens.Set(m, update(lens.Get(m)).Value) so the
// dispatcher never needs to know a scene's local types.
type Scene[M, V any] interface {
	Name() Name

	// FilterModel and FilterView apply the scene's event filters.
	FilterModel(Event) (Event, bool)
	FilterView(Event) (Event, bool)

	// UpdateModel projects the scene model out of m, applies the
	// scene's update for one filtered event, and writes the result
	// back through the same lens. UpdateView does the same for the
	// view model and additionally sees the already-updated model.
	UpdateModel(Frame, M, Event) (M, []Event)
	UpdateView(Frame, M, V, Event) (V, []Event)

	// Present is called once per frame after all event processing.
	Present(Frame, M, V) Render

	// Subsystems returns the scene-scoped subsystems. They persist
	// across activations and are simply not scheduled while the
	// scene is inactive.
	Subsystems() []Subsystem[M, V]
}

// Desc declares one scene over global model M and view V, with a
// scene-local model SM and view SV projected through lenses. A Desc
// is immutable once built; typically one per logical scene for the
// application's whole lifetime.
//
// UpdateModel and UpdateView must be pure: no I/O, no mutation of
// their arguments, effects described only through the returned
// Outcome's events. Present describes rendering as data.
type Desc[M, V, SM, SV any] struct {
	Name       Name
	Model      lens.Lens[M, SM]
	View       lens.Lens[V, SV]
	Filters    Filters
	Subsystems []Subsystem[M, V]

	UpdateModel func(Frame, SM, Event) Outcome[SM]
	UpdateView  func(Frame, SM, SV, Event) Outcome[SV]
	Present     func(Frame, SM, SV) Render
}

// Build boxes the descriptor behind the erased Scene interface.
func (d Desc[M, V, SM, SV]) Build() Scene[M, V] {
	return boxed[M, V, SM, SV]{d: d}
}

type boxed[M, V, SM, SV any] struct {
	d Desc[M, V, SM, SV]
}

func (b boxed[M, V, SM, SV]) Name() Name { return b.d.Name }

func (b boxed[M, V, SM, SV]) FilterModel(ev Event) (Event, bool) {
	return b.d.Filters.filterModel(ev)
}

func (b boxed[M, V, SM, SV]) FilterView(ev Event) (Event, bool) {
	return b.d.Filters.filterView(ev)
}

func (b boxed[M, V, SM, SV]) UpdateModel(f Frame, m M, ev Event) (M, []Event) {
	if b.d.UpdateModel == nil {
		return m, nil
	}
	out := b.d.UpdateModel(f, b.d.Model.Get(m), ev)
	return b.d.Model.Set(m, out.Value), out.Events
}

func (b boxed[M, V, SM, SV]) UpdateView(f Frame, m M, v V, ev Event) (V, []Event) {
	if b.d.UpdateView == nil {
		return v, nil
	}
	out := b.d.UpdateView(f, b.d.Model.Get(m), b.d.View.Get(v), ev)
	return b.d.View.Set(v, out.Value), out.Events
}

func (b boxed[M, V, SM, SV]) Present(f Frame, m M, v V) Render {
	if b.d.Present == nil {
		return Render{From: string(b.d.Name)}
	}
	return b.d.Present(f, b.d.Model.Get(m), b.d.View.Get(v))
}

func (b boxed[M, V, SM, SV]) Subsystems() []Subsystem[M, V] {
	return b.d.Subsystems
}
