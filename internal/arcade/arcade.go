// Package arcade is the demo application built on the scene core: a
// menu, a dice game, and a score board, each owning one slice of the
// global model through its lens.
package arcade

import (
	"fmt"
	"strings"

	"github.com/jask/stagehand/lens"
	"github.com/jask/stagehand/scene"
)

const (
	SceneMenu   scene.Name = "menu"
	SceneGame   scene.Name = "game"
	SceneScores scene.Name = "scores"
)

// Model is the global model tree. Each scene owns exactly one field,
// reachable only through its lens; the score board's slice is fed by
// the scoreboard subsystem, never written by another scene.
type Model struct {
	Menu   MenuModel
	Game   GameModel
	Scores ScoreModel
}

// View is the global view-model tree, shaped like Model.
type View struct {
	Menu   MenuView
	Game   GameView
	Scores ScoreView
}

type MenuModel struct {
	Choice int
}

type GameModel struct {
	Rolls      int
	Last       int
	Total      int
	Streak     int
	BestStreak int
}

type ScoreModel struct {
	TotalRolls int
	BestRoll   int
}

type MenuView struct {
	Lines string
}

type GameView struct {
	Face string
}

type ScoreView struct {
	Summary string
}

// Domain events.

// MenuMove moves the menu cursor.
type MenuMove struct{ Delta int }

// MenuSelect confirms the current menu entry; the menu scene answers
// with a JumpTo in its Outcome.
type MenuSelect struct{}

// RollDice rolls once using the frame's randomness source.
type RollDice struct{}

// ResetGame clears the game slice.
type ResetGame struct{}

// RollScored is emitted by the game scene after each roll and
// consumed by the scoreboard subsystem on the following frame.
type RollScored struct{ Value int }

var menuEntries = []struct {
	Label  string
	Target scene.Name
}{
	{Label: "Play dice", Target: SceneGame},
	{Label: "Scores", Target: SceneScores},
}

func menuLens() lens.Lens[Model, MenuModel] {
	return lens.New(
		func(m Model) MenuModel { return m.Menu },
		func(m Model, p MenuModel) Model { m.Menu = p; return m },
	)
}

func gameLens() lens.Lens[Model, GameModel] {
	return lens.New(
		func(m Model) GameModel { return m.Game },
		func(m Model, p GameModel) Model { m.Game = p; return m },
	)
}

func scoresLens() lens.Lens[Model, ScoreModel] {
	return lens.New(
		func(m Model) ScoreModel { return m.Scores },
		func(m Model, p ScoreModel) Model { m.Scores = p; return m },
	)
}

func menuViewLens() lens.Lens[View, MenuView] {
	return lens.New(
		func(v View) MenuView { return v.Menu },
		func(v View, p MenuView) View { v.Menu = p; return v },
	)
}

func gameViewLens() lens.Lens[View, GameView] {
	return lens.New(
		func(v View) GameView { return v.Game },
		func(v View, p GameView) View { v.Game = p; return v },
	)
}

func scoresViewLens() lens.Lens[View, ScoreView] {
	return lens.New(
		func(v View) ScoreView { return v.Scores },
		func(v View, p ScoreView) View { v.Scores = p; return v },
	)
}

// Scenes returns the demo scene list in traversal order.
func Scenes() []scene.Scene[Model, View] {
	return []scene.Scene[Model, View]{
		menuScene(),
		gameScene(),
		scoresScene(),
	}
}

func menuScene() scene.Scene[Model, View] {
	return scene.Desc[Model, View, MenuModel, MenuView]{
		Name:    SceneMenu,
		Model:   menuLens(),
		View:    menuViewLens(),
		Filters: scene.Filters{Model: scene.OneOf(scene.Only[MenuMove](), scene.Only[MenuSelect]())},
		UpdateModel: func(_ scene.Frame, m MenuModel, ev scene.Event) scene.Outcome[MenuModel] {
			switch e := ev.(type) {
			case MenuMove:
				m.Choice += e.Delta
				if m.Choice < 0 {
					m.Choice = 0
				}
				if m.Choice > len(menuEntries)-1 {
					m.Choice = len(menuEntries) - 1
				}
				return scene.Done(m)
			case MenuSelect:
				return scene.Emit(m, scene.JumpTo{Target: menuEntries[m.Choice].Target})
			}
			return scene.Done(m)
		},
		UpdateView: func(_ scene.Frame, m MenuModel, v MenuView, _ scene.Event) scene.Outcome[MenuView] {
			var b strings.Builder
			for i, entry := range menuEntries {
				cursor := "  "
				if i == m.Choice {
					cursor = "> "
				}
				b.WriteString(cursor + entry.Label + "\n")
			}
			v.Lines = strings.TrimRight(b.String(), "\n")
			return scene.Done(v)
		},
		Present: func(f scene.Frame, m MenuModel, v MenuView) scene.Render {
			lines := v.Lines
			if lines == "" {
				// First frame before any event has shaped the view.
				lines = "> " + menuEntries[0].Label
			}
			title := "Menu"
			if greeting, ok := f.Boot.(string); ok && greeting != "" {
				title = greeting
			}
			return scene.Render{From: string(SceneMenu), Title: title, Content: lines}
		},
	}.Build()
}

func gameScene() scene.Scene[Model, View] {
	return scene.Desc[Model, View, GameModel, GameView]{
		Name:       SceneGame,
		Model:      gameLens(),
		View:       gameViewLens(),
		Filters:    scene.Filters{Model: scene.OneOf(scene.Only[RollDice](), scene.Only[ResetGame]())},
		Subsystems: []scene.Subsystem[Model, View]{streakSubsystem()},
		UpdateModel: func(f scene.Frame, m GameModel, ev scene.Event) scene.Outcome[GameModel] {
			switch ev.(type) {
			case RollDice:
				value := 1
				if f.Rand != nil {
					value = f.Rand.Intn(6) + 1
				}
				m.Rolls++
				m.Last = value
				m.Total += value
				return scene.Emit(m, RollScored{Value: value})
			case ResetGame:
				return scene.Done(GameModel{})
			}
			return scene.Done(m)
		},
		UpdateView: func(_ scene.Frame, m GameModel, v GameView, _ scene.Event) scene.Outcome[GameView] {
			if m.Last == 0 {
				v.Face = "-"
			} else {
				v.Face = diceFaces[m.Last-1]
			}
			return scene.Done(v)
		},
		Present: func(_ scene.Frame, m GameModel, v GameView) scene.Render {
			face := v.Face
			if face == "" {
				face = "-"
			}
			content := fmt.Sprintf("%s  rolls %d  total %d", face, m.Rolls, m.Total)
			return scene.Render{From: string(SceneGame), Title: "Dice", Content: content}
		},
	}.Build()
}

var diceFaces = [6]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

func scoresScene() scene.Scene[Model, View] {
	dropAll := func(scene.Event) (scene.Event, bool) { return nil, false }
	return scene.Desc[Model, View, ScoreModel, ScoreView]{
		Name:  SceneScores,
		Model: scoresLens(),
		View:  scoresViewLens(),
		// The score board reacts to no events; its slice is written
		// by the scoreboard subsystem while other scenes are active.
		Filters: scene.Filters{Model: dropAll, View: dropAll},
		Present: func(_ scene.Frame, m ScoreModel, _ ScoreView) scene.Render {
			content := fmt.Sprintf("total rolls %d\nbest roll   %d", m.TotalRolls, m.BestRoll)
			return scene.Render{From: string(SceneScores), Title: "Scores", Content: content}
		},
	}.Build()
}

// GlobalSubsystems returns the subsystems that run every frame
// regardless of the active scene.
func GlobalSubsystems() []scene.Subsystem[Model, View] {
	return []scene.Subsystem[Model, View]{scoreboardSubsystem()}
}

// scoreboardSubsystem tallies RollScored events into the score
// board's model slice. It runs globally, so rolls are counted even
// though the game scene, not the score scene, is active when they
// happen.
func scoreboardSubsystem() scene.Subsystem[Model, View] {
	return scene.SubFuncs[Model, View]{
		Name: "scoreboard",
		OnUpdate: func(_ scene.Frame, m Model, v View, events []scene.Event) (Model, View, []scene.Event) {
			for _, ev := range events {
				scored, ok := ev.(RollScored)
				if !ok {
					continue
				}
				m.Scores.TotalRolls++
				if scored.Value > m.Scores.BestRoll {
					m.Scores.BestRoll = scored.Value
				}
			}
			v.Scores.Summary = fmt.Sprintf("%d rolls, best %d", m.Scores.TotalRolls, m.Scores.BestRoll)
			return m, v, nil
		},
	}
}

// streakSubsystem is scoped to the game scene: it tracks runs of
// high rolls and presents a banner while a streak is live. It
// persists across activations but is only scheduled while the game
// scene is active.
func streakSubsystem() scene.Subsystem[Model, View] {
	return scene.SubFuncs[Model, View]{
		Name: "streak",
		OnUpdate: func(_ scene.Frame, m Model, v View, events []scene.Event) (Model, View, []scene.Event) {
			for _, ev := range events {
				scored, ok := ev.(RollScored)
				if !ok {
					continue
				}
				if scored.Value >= 4 {
					m.Game.Streak++
					if m.Game.Streak > m.Game.BestStreak {
						m.Game.BestStreak = m.Game.Streak
					}
				} else {
					m.Game.Streak = 0
				}
			}
			return m, v, nil
		},
		OnPresent: func(_ scene.Frame, m Model, _ View) (scene.Render, bool) {
			if m.Game.Streak < 2 {
				return scene.Render{}, false
			}
			return scene.Render{
				From:    "streak",
				Content: fmt.Sprintf("%d high rolls in a row!", m.Game.Streak),
			}, true
		},
	}
}
