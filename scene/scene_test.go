package scene

import (
	"fmt"

	"github.com/jask/stagehand/lens"
)

// Shared fixtures: a tiny global state split across three scenes.

type counterModel struct{ N int }

type labelView struct{ Text string }

type world struct {
	A counterModel
	B counterModel
	C counterModel
}

type worldView struct {
	A labelView
	B labelView
	C labelView
}

type bump struct{ By int }

type noise struct{}

func aLens() lens.Lens[world, counterModel] {
	return lens.New(
		func(w world) counterModel { return w.A },
		func(w world, p counterModel) world { w.A = p; return w },
	)
}

func bLens() lens.Lens[world, counterModel] {
	return lens.New(
		func(w world) counterModel { return w.B },
		func(w world, p counterModel) world { w.B = p; return w },
	)
}

func cLens() lens.Lens[world, counterModel] {
	return lens.New(
		func(w world) counterModel { return w.C },
		func(w world, p counterModel) world { w.C = p; return w },
	)
}

func aViewLens() lens.Lens[worldView, labelView] {
	return lens.New(
		func(v worldView) labelView { return v.A },
		func(v worldView, p labelView) worldView { v.A = p; return v },
	)
}

func bViewLens() lens.Lens[worldView, labelView] {
	return lens.New(
		func(v worldView) labelView { return v.B },
		func(v worldView, p labelView) worldView { v.B = p; return v },
	)
}

func cViewLens() lens.Lens[worldView, labelView] {
	return lens.New(
		func(v worldView) labelView { return v.C },
		func(v worldView, p labelView) worldView { v.C = p; return v },
	)
}

// counterScene bumps its counter on bump events and mirrors the
// counter into its view label.
func counterScene(name Name, ml lens.Lens[world, counterModel], vl lens.Lens[worldView, labelView]) Scene[world, worldView] {
	return Desc[world, worldView, counterModel, labelView]{
		Name:    name,
		Model:   ml,
		View:    vl,
		Filters: Filters{Model: Only[bump](), View: Only[bump]()},
		UpdateModel: func(_ Frame, m counterModel, ev Event) Outcome[counterModel] {
			m.N += ev.(bump).By
			return Done(m)
		},
		UpdateView: func(_ Frame, m counterModel, v labelView, _ Event) Outcome[labelView] {
			v.Text = fmt.Sprintf("%s=%d", name, m.N)
			return Done(v)
		},
		Present: func(_ Frame, m counterModel, v labelView) Render {
			return Render{From: string(name), Content: v.Text}
		},
	}.Build()
}

func threeScenes() []Scene[world, worldView] {
	return []Scene[world, worldView]{
		counterScene("s0", aLens(), aViewLens()),
		counterScene("s1", bLens(), bViewLens()),
		counterScene("s2", cLens(), cViewLens()),
	}
}

func mustRegistry(scenes ...Scene[world, worldView]) *Registry[world, worldView] {
	reg, err := NewRegistry(scenes...)
	if err != nil {
		panic(err)
	}
	return reg
}

// recordingObserver captures navigation telemetry for assertions.
type recordingObserver struct {
	changes []string
	misses  []string
}

func (o *recordingObserver) SceneChanged(from, to Name, _ NavEvent) {
	o.changes = append(o.changes, fmt.Sprintf("%s->%s", from, to))
}

func (o *recordingObserver) JumpMissed(from, target, nearest Name) {
	o.misses = append(o.misses, fmt.Sprintf("%s!%s~%s", from, target, nearest))
}
