package scene

import (
	"errors"
	"fmt"
)

// ErrSceneVanished reports that the navigator's current name no
// longer resolves in the registry. Unreachable when the navigator is
// the only writer of its state; if it surfaces, the navigator and
// registry have diverged and the frame must be aborted.
var ErrSceneVanished = errors.New("scene: active scene not registered")

// Observer receives navigation telemetry. Implementations live
// outside the core (logging, journaling); the navigator itself never
// fails on a miss.
type Observer interface {
	SceneChanged(from, to Name, cause NavEvent)
	JumpMissed(from, target, nearest Name)
}

// Navigator tracks which scene is currently active. Its entire state
// is the current Name; transitions are atomic and effective for the
// dispatch that follows within the same frame. Construct one per
// application loop and thread it through explicitly, never share a
// process-wide instance.
type Navigator[M, V any] struct {
	reg     *Registry[M, V]
	current Name
	obs     Observer
}

// NewNavigator starts at initial if it is registered, otherwise at
// the registry head.
func NewNavigator[M, V any](reg *Registry[M, V], initial Name) *Navigator[M, V] {
	current := reg.Head().Name()
	if _, ok := reg.IndexOf(initial); ok {
		current = initial
	}
	return &Navigator[M, V]{reg: reg, current: current}
}

// Observe attaches a telemetry observer. Passing nil detaches.
func (n *Navigator[M, V]) Observe(obs Observer) { n.obs = obs }

// Current returns the active scene name.
func (n *Navigator[M, V]) Current() Name { return n.current }

// Active resolves the active scene descriptor.
func (n *Navigator[M, V]) Active() (Scene[M, V], error) {
	s, ok := n.reg.ByName(n.current)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSceneVanished, n.current)
	}
	return s, nil
}

// Apply consumes one navigation event. Next and Previous stop at the
// registry boundaries instead of wrapping; JumpTo with an unknown
// target stays put. When several navigation events arrive in one
// frame the caller applies them in arrival order, each against the
// result of the previous.
func (n *Navigator[M, V]) Apply(ev NavEvent) {
	switch e := ev.(type) {
	case Next:
		if i, _ := n.reg.IndexOf(n.current); i < n.reg.Len()-1 {
			n.moveTo(n.reg.ordered[i+1].Name(), ev)
		}
	case Previous:
		if i, _ := n.reg.IndexOf(n.current); i > 0 {
			n.moveTo(n.reg.ordered[i-1].Name(), ev)
		}
	case JumpTo:
		if _, ok := n.reg.IndexOf(e.Target); !ok {
			if n.obs != nil {
				n.obs.JumpMissed(n.current, e.Target, n.reg.Nearest(e.Target))
			}
			return
		}
		if e.Target != n.current {
			n.moveTo(e.Target, ev)
		}
	}
}

func (n *Navigator[M, V]) moveTo(to Name, cause NavEvent) {
	from := n.current
	n.current = to
	if n.obs != nil {
		n.obs.SceneChanged(from, to, cause)
	}
}
