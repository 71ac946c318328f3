package scene

// Event is the open application event type. Anything can be an
// event; the core distinguishes only the closed navigation set below
// and treats everything else as an opaque domain event.
type Event interface{}

// NavEvent is the closed set of scene navigation events. Navigation
// events are intercepted by the Navigator before any scene's filters
// run; a scene never observes one through its update path.
type NavEvent interface {
	Event
	nav()
}

// Next advances to the following scene in registry order. At the
// last scene it is a no-op; the order does not wrap.
type Next struct{}

// Previous steps back to the preceding scene in registry order. At
// the first scene it is a no-op.
type Previous struct{}

// JumpTo moves directly to a named scene. An unknown target is a
// deliberate no-op, observable only through the Navigator's Observer.
type JumpTo struct {
	Target Name
}

func (Next) nav()     {}
func (Previous) nav() {}
func (JumpTo) nav()   {}

// Filter maps an incoming domain event to zero or one outgoing
// event: return (ev, true) to pass it through (possibly rewritten),
// or (nil, false) to drop it.
type Filter func(Event) (Event, bool)

// Filters selects which domain events reach a scene's update
// functions. The model and view filters run independently; a nil
// filter passes every event through unchanged.
type Filters struct {
	Model Filter
	View  Filter
}

func (f Filters) filterModel(ev Event) (Event, bool) {
	if f.Model == nil {
		return ev, true
	}
	return f.Model(ev)
}

func (f Filters) filterView(ev Event) (Event, bool) {
	if f.View == nil {
		return ev, true
	}
	return f.View(ev)
}

// Only passes just events of type E through, unchanged. Handy for
// scenes that care about a single event type.
func Only[E Event]() Filter {
	return func(ev Event) (Event, bool) {
		if _, ok := ev.(E); ok {
			return ev, true
		}
		return nil, false
	}
}

// OneOf passes an event when any of the given filters passes it; the
// first filter to accept wins.
func OneOf(filters ...Filter) Filter {
	return func(ev Event) (Event, bool) {
		for _, f := range filters {
			if out, ok := f(ev); ok {
				return out, true
			}
		}
		return nil, false
	}
}
