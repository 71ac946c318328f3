// Package tui hosts the Bubble Tea program that drives the scene
// core: it owns the global model and view, turns key presses into
// events, ticks the dispatcher once per frame, and draws the
// returned renders.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/stagehand/internal/arcade"
	"github.com/jask/stagehand/internal/config"
	"github.com/jask/stagehand/internal/journal"
	"github.com/jask/stagehand/scene"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 2)
)

type keyMap struct {
	NextScene key.Binding
	PrevScene key.Binding
	Menu      key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Roll      key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextScene: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next scene")),
		PrevScene: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev scene")),
		Menu:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Roll:      key.NewBinding(key.WithKeys("r", " "), key.WithHelp("r/space", "roll")),
		Reset:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// App is the Bubble Tea model wrapping the dispatcher. It owns the
// single authoritative global model and view; scenes only ever see
// their lens slices.
type App struct {
	cfg  config.Config
	keys keyMap

	disp *scene.Dispatcher[arcade.Model, arcade.View]
	nav  *scene.Navigator[arcade.Model, arcade.View]
	rec  *journal.Recorder

	model arcade.Model
	view  arcade.View

	rng     *rand.Rand
	pending []scene.Event
	renders []scene.Render
	last    time.Time

	width    int
	height   int
	status   string
	fatal    error
	quitting bool
}

// New builds the app. rec may be nil when journaling is disabled.
func New(cfg config.Config, disp *scene.Dispatcher[arcade.Model, arcade.View], nav *scene.Navigator[arcade.Model, arcade.View], rec *journal.Recorder) App {
	return App{
		cfg:    cfg,
		keys:   newKeyMap(),
		disp:   disp,
		nav:    nav,
		rec:    rec,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		width:  100,
		height: 32,
		status: "Ready",
	}
}

type tickMsg time.Time

func (a App) tick() tea.Cmd {
	interval := time.Duration(a.cfg.UI.Tick) * time.Millisecond
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a App) Init() tea.Cmd {
	return a.tick()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.quitting = true
			return a, tea.Quit
		}
		a.pending = append(a.pending, a.mapKey(msg)...)
		return a, nil

	case tickMsg:
		return a.step(time.Time(msg))
	}
	return a, nil
}

// mapKey translates a key press into zero or more events. Keys map
// globally; each scene's filters decide what it actually consumes.
func (a App) mapKey(msg tea.KeyMsg) []scene.Event {
	switch {
	case key.Matches(msg, a.keys.NextScene):
		return []scene.Event{scene.Next{}}
	case key.Matches(msg, a.keys.PrevScene):
		return []scene.Event{scene.Previous{}}
	case key.Matches(msg, a.keys.Menu):
		return []scene.Event{scene.JumpTo{Target: arcade.SceneMenu}}
	case key.Matches(msg, a.keys.Up):
		return []scene.Event{arcade.MenuMove{Delta: -1}}
	case key.Matches(msg, a.keys.Down):
		return []scene.Event{arcade.MenuMove{Delta: 1}}
	case key.Matches(msg, a.keys.Select):
		return []scene.Event{arcade.MenuSelect{}}
	case key.Matches(msg, a.keys.Roll):
		return []scene.Event{arcade.RollDice{}}
	case key.Matches(msg, a.keys.Reset):
		return []scene.Event{arcade.ResetGame{}}
	}
	return nil
}

// step runs one dispatcher frame against the batched input events.
func (a App) step(now time.Time) (tea.Model, tea.Cmd) {
	delta := time.Duration(a.cfg.UI.Tick) * time.Millisecond
	if !a.last.IsZero() {
		delta = now.Sub(a.last)
	}
	a.last = now

	f := scene.Frame{
		Time:  now,
		Delta: delta,
		Rand:  a.rng,
		Boot:  "Stagehand Arcade",
	}
	batch := a.pending
	a.pending = nil

	model, view, renders, err := a.disp.Frame(f, a.model, a.view, batch)
	if err != nil {
		// Navigator/registry divergence is a programming fault;
		// abort instead of limping on with stale state.
		a.fatal = err
		return a, tea.Quit
	}
	a.model, a.view, a.renders = model, view, renders

	if a.rec != nil {
		a.rec.Frame(now, a.nav.Current(), len(batch), len(renders))
	}
	a.status = fmt.Sprintf("scene %s", a.nav.Current())
	return a, a.tick()
}

func (a App) View() string {
	if a.quitting || a.fatal != nil {
		if a.fatal != nil {
			return "fatal: " + a.fatal.Error() + "\n"
		}
		return "bye\n"
	}
	accent := lipgloss.Color(a.cfg.UI.Accent)

	var body strings.Builder
	for i, r := range a.renders {
		if i == 0 {
			// The active scene's render gets the framed pane; the
			// rest are subsystem banners.
			title := r.Title
			if title == "" {
				title = r.From
			}
			pane := paneStyle.BorderForeground(accent).Width(minInt(a.width-4, 48)).Render(
				titleStyle.Foreground(accent).Render(title) + "\n\n" + r.Content,
			)
			body.WriteString(pane + "\n")
			continue
		}
		body.WriteString(bannerStyle.Render(r.Content) + "\n")
	}

	status := statusBarStyle.Width(a.width).Render(a.status)
	footer := footerStyle.Render(a.footerHelp())
	return lipgloss.JoinVertical(lipgloss.Left, body.String(), status, footer)
}

func (a App) footerHelp() string {
	bindings := []key.Binding{
		a.keys.NextScene, a.keys.PrevScene, a.keys.Select,
		a.keys.Roll, a.keys.Menu, a.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ·  ")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
