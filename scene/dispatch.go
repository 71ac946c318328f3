package scene

// Dispatcher orchestrates one frame: navigation first, then the
// active scene's filtered model and view updates through its lenses,
// one presentation, then subsystems. It owns the carry-over queue of
// events emitted by Outcomes, redelivering them at the start of the
// next frame ahead of externally supplied events.
//
// Everything runs single-threaded and frame-synchronous; the frame
// is the transaction boundary for the global model and view.
type Dispatcher[M, V any] struct {
	nav     *Navigator[M, V]
	global  []Subsystem[M, V]
	pending []Event
}

// NewDispatcher builds a dispatcher around a navigator. Global
// subsystems run every frame regardless of the active scene.
func NewDispatcher[M, V any](nav *Navigator[M, V], global ...Subsystem[M, V]) *Dispatcher[M, V] {
	return &Dispatcher[M, V]{nav: nav, global: global}
}

// Enqueue adds events for the next frame, behind any carry-over
// events already queued.
func (d *Dispatcher[M, V]) Enqueue(events ...Event) {
	d.pending = append(d.pending, events...)
}

// Pending reports how many events are queued for the next frame.
func (d *Dispatcher[M, V]) Pending() int { return len(d.pending) }

// Frame runs one frame over the global model and view and returns
// their updated values plus the renders to hand to the external
// renderer: the active scene's render first, then one per subsystem
// that chose to present (global before scene-scoped).
//
// Order within the frame:
//  1. carry-over events from previous Outcomes, then this frame's
//     batch; navigation events are consumed by the navigator in
//     arrival order and never reach a scene
//  2. the active scene is resolved after navigation, so a jump
//     honored this frame is visible to this frame's dispatch
//  3. model pass over the model-filtered events, then view pass over
//     the view-filtered events with the updated model visible
//  4. one Present for the active scene
//  5. subsystems advance once each over the unfiltered domain events
//
// The only error is ErrSceneVanished, a programming fault: the frame
// is aborted, no partial recovery is attempted, and the returned
// model and view are the untouched inputs.
func (d *Dispatcher[M, V]) Frame(f Frame, m M, v V, events []Event) (M, V, []Render, error) {
	queue := make([]Event, 0, len(d.pending)+len(events))
	queue = append(queue, d.pending...)
	queue = append(queue, events...)
	d.pending = nil

	domain := make([]Event, 0, len(queue))
	for _, ev := range queue {
		if nav, ok := ev.(NavEvent); ok {
			d.nav.Apply(nav)
			continue
		}
		domain = append(domain, ev)
	}

	active, err := d.nav.Active()
	if err != nil {
		d.pending = domain // do not lose the batch on an aborted frame
		return m, v, nil, err
	}

	for _, ev := range domain {
		if fev, ok := active.FilterModel(ev); ok {
			var emitted []Event
			m, emitted = active.UpdateModel(f, m, fev)
			d.pending = append(d.pending, emitted...)
		}
	}
	for _, ev := range domain {
		if fev, ok := active.FilterView(ev); ok {
			var emitted []Event
			v, emitted = active.UpdateView(f, m, v, fev)
			d.pending = append(d.pending, emitted...)
		}
	}

	renders := make([]Render, 0, 1+len(d.global)+len(active.Subsystems()))
	renders = append(renders, active.Present(f, m, v))

	for _, sub := range d.global {
		m, v, renders = d.runSubsystem(sub, f, m, v, domain, renders)
	}
	for _, sub := range active.Subsystems() {
		m, v, renders = d.runSubsystem(sub, f, m, v, domain, renders)
	}
	return m, v, renders, nil
}

func (d *Dispatcher[M, V]) runSubsystem(sub Subsystem[M, V], f Frame, m M, v V, domain []Event, renders []Render) (M, V, []Render) {
	var emitted []Event
	m, v, emitted = sub.Update(f, m, v, domain)
	d.pending = append(d.pending, emitted...)
	if r, ok := sub.Present(f, m, v); ok {
		renders = append(renders, r)
	}
	return m, v, renders
}
