package scene

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRegistryRejectsEmpty(t *testing.T) {
	_, err := NewRegistry[world, worldView]()
	if !errors.Is(err, ErrEmptyRegistry) {
		t.Fatalf("expected ErrEmptyRegistry, got %v", err)
	}
}

func TestNewRegistryRejectsDuplicateNames(t *testing.T) {
	_, err := NewRegistry(
		counterScene("dup", aLens(), aViewLens()),
		counterScene("other", bLens(), bViewLens()),
		counterScene("dup", cLens(), cViewLens()),
	)
	if err == nil {
		t.Fatal("expected duplicate-name error")
	}
	if !strings.Contains(err.Error(), `"dup"`) {
		t.Fatalf("error should name the duplicate: %v", err)
	}
}

func TestNewRegistryRejectsNilAndUnnamed(t *testing.T) {
	if _, err := NewRegistry(counterScene("ok", aLens(), aViewLens()), nil); err == nil {
		t.Fatal("expected nil-scene error")
	}
	if _, err := NewRegistry(counterScene("", aLens(), aViewLens())); err == nil {
		t.Fatal("expected empty-name error")
	}
}

func TestRegistryOrderAndLookup(t *testing.T) {
	reg := mustRegistry(threeScenes()...)

	if reg.Len() != 3 {
		t.Fatalf("len = %d, want 3", reg.Len())
	}
	if got := reg.Head().Name(); got != "s0" {
		t.Fatalf("head = %q, want s0", got)
	}
	names := []Name{"s0", "s1", "s2"}
	for i, s := range reg.All() {
		if s.Name() != names[i] {
			t.Fatalf("All()[%d] = %q, want %q", i, s.Name(), names[i])
		}
	}
	for i, name := range names {
		got, ok := reg.IndexOf(name)
		if !ok || got != i {
			t.Fatalf("IndexOf(%q) = %d,%v, want %d,true", name, got, ok, i)
		}
		s, ok := reg.ByName(name)
		if !ok || s.Name() != name {
			t.Fatalf("ByName(%q) failed", name)
		}
	}
	if _, ok := reg.ByName("ghost"); ok {
		t.Fatal("ByName should miss unknown names")
	}
	if _, ok := reg.IndexOf("ghost"); ok {
		t.Fatal("IndexOf should miss unknown names")
	}
}

func TestRegistryAllIsACopy(t *testing.T) {
	reg := mustRegistry(threeScenes()...)
	all := reg.All()
	all[0] = all[2]
	if got := reg.Head().Name(); got != "s0" {
		t.Fatalf("mutating All() result leaked into registry: head = %q", got)
	}
}

func TestRegistryNearest(t *testing.T) {
	reg := mustRegistry(
		counterScene("menu", aLens(), aViewLens()),
		counterScene("game", bLens(), bViewLens()),
		counterScene("scores", cLens(), cViewLens()),
	)
	cases := map[Name]Name{
		"menus":  "menu",
		"gmae":   "game",
		"score":  "scores",
		"menu":   "menu",
		"zzzzzz": "menu", // all distance 6; ties go to the earlier scene
	}
	for in, want := range cases {
		if got := reg.Nearest(in); got != want {
			t.Errorf("Nearest(%q) = %q, want %q", in, got, want)
		}
	}
}
