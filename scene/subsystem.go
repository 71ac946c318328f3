package scene

// Subsystem is an independently scheduled mini state machine, scoped
// either globally or to one scene. It has the same update/present
// shape as a scene but no lens and no navigation awareness, and it
// always receives the frame's unfiltered domain event stream in one
// call, even when that stream is empty.
type Subsystem[M, V any] interface {
	ID() string
	Update(Frame, M, V, []Event) (M, V, []Event)
	Present(Frame, M, V) (Render, bool)
}

// SubFuncs adapts plain functions into a Subsystem. Nil funcs are
// no-ops.
type SubFuncs[M, V any] struct {
	Name      string
	OnUpdate  func(Frame, M, V, []Event) (M, V, []Event)
	OnPresent func(Frame, M, V) (Render, bool)
}

func (s SubFuncs[M, V]) ID() string { return s.Name }

func (s SubFuncs[M, V]) Update(f Frame, m M, v V, events []Event) (M, V, []Event) {
	if s.OnUpdate == nil {
		return m, v, nil
	}
	return s.OnUpdate(f, m, v, events)
}

func (s SubFuncs[M, V]) Present(f Frame, m M, v V) (Render, bool) {
	if s.OnPresent == nil {
		return Render{}, false
	}
	return s.OnPresent(f, m, v)
}
