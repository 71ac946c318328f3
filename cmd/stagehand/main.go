package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/stagehand/internal/arcade"
	"github.com/jask/stagehand/internal/config"
	"github.com/jask/stagehand/internal/journal"
	"github.com/jask/stagehand/internal/tui"
	"github.com/jask/stagehand/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var rec *journal.Recorder
	if cfg.Journal.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0o755); err != nil {
			log.Fatalf("mkdir journal dir: %v", err)
		}
		if err := journal.RunMigrations(cfg.Journal.Path, "internal/journal/migrations"); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		db, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer db.Close()
		rec, err = journal.NewRecorder(db)
		if err != nil {
			log.Fatalf("journal session: %v", err)
		}
	}

	reg, err := scene.NewRegistry(arcade.Scenes()...)
	if err != nil {
		// Duplicate or empty scene lists are configuration faults;
		// the application must not start.
		log.Fatalf("scene registry: %v", err)
	}

	nav := scene.NewNavigator(reg, scene.Name(cfg.Scenes.Initial))
	if rec != nil {
		nav.Observe(rec)
	}
	disp := scene.NewDispatcher(nav, arcade.GlobalSubsystems()...)

	app := tui.New(cfg, disp, nav, rec)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
