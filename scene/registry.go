package scene

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// ErrEmptyRegistry is returned when a registry is built from zero
// scenes. The scene list is a boot-time configuration; an empty one
// means the application must not start.
var ErrEmptyRegistry = errors.New("scene: registry needs at least one scene")

// Registry is the static, ordered, name-unique collection of all
// scenes. It is never mutated after construction; the ordering
// defines the traversal order for Next and Previous.
type Registry[M, V any] struct {
	ordered []Scene[M, V]
	index   map[Name]int
}

// NewRegistry validates the scene list and builds a registry.
// Duplicate names and empty lists are configuration errors surfaced
// here, at construction, never at navigation time.
func NewRegistry[M, V any](scenes ...Scene[M, V]) (*Registry[M, V], error) {
	if len(scenes) == 0 {
		return nil, ErrEmptyRegistry
	}
	index := make(map[Name]int, len(scenes))
	for i, s := range scenes {
		if s == nil {
			return nil, fmt.Errorf("scene: nil scene at position %d", i)
		}
		name := s.Name()
		if name == "" {
			return nil, fmt.Errorf("scene: scene at position %d has an empty name", i)
		}
		if prev, exists := index[name]; exists {
			return nil, fmt.Errorf("scene: duplicate name %q at positions %d and %d", name, prev, i)
		}
		index[name] = i
	}
	ordered := make([]Scene[M, V], len(scenes))
	copy(ordered, scenes)
	return &Registry[M, V]{ordered: ordered, index: index}, nil
}

// Len returns the number of registered scenes, always at least one.
func (r *Registry[M, V]) Len() int { return len(r.ordered) }

// All returns the scenes in registry order.
func (r *Registry[M, V]) All() []Scene[M, V] {
	out := make([]Scene[M, V], len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Head returns the first scene. Always defined by the non-empty
// invariant.
func (r *Registry[M, V]) Head() Scene[M, V] { return r.ordered[0] }

// ByName looks a scene up by name.
func (r *Registry[M, V]) ByName(name Name) (Scene[M, V], bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.ordered[i], true
}

// IndexOf returns a scene's position in registry order.
func (r *Registry[M, V]) IndexOf(name Name) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Nearest returns the registered name with the smallest edit
// distance to name; ties go to the earlier scene. Telemetry uses it
// to report "did you mean" on a missed jump.
func (r *Registry[M, V]) Nearest(name Name) Name {
	best := r.ordered[0].Name()
	bestDist := levenshtein.ComputeDistance(string(name), string(best))
	for _, s := range r.ordered[1:] {
		if d := levenshtein.ComputeDistance(string(name), string(s.Name())); d < bestDist {
			best, bestDist = s.Name(), d
		}
	}
	return best
}
