// Package config loads stagehand configuration from file and env.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Journal JournalConfig
	Scenes  ScenesConfig
}

// UIConfig holds frame-loop and presentation settings.
type UIConfig struct {
	Tick   int    // frame interval in milliseconds
	Accent string // lipgloss color for the active scene chrome
}

// JournalConfig holds telemetry journal settings.
type JournalConfig struct {
	Enabled bool
	Path    string
}

// ScenesConfig holds boot-time scene settings.
type ScenesConfig struct {
	Initial string
}

// Load reads configuration from file and env. Env var overrides use
// prefix STAGEHAND_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.tick", 100)
	v.SetDefault("ui.accent", "63")
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "stagehand", "journal.db"))
	v.SetDefault("scenes.initial", "menu")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STAGEHAND_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "stagehand"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STAGEHAND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the configuration as TOML to the STAGEHAND_CONFIG file
// when set, otherwise to ~/.config/stagehand/config.toml, creating
// the directory if needed.
func Save(c Config) error {
	path := os.Getenv("STAGEHAND_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "stagehand", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.tick", c.UI.Tick)
	v.Set("ui.accent", c.UI.Accent)
	v.Set("journal.enabled", c.Journal.Enabled)
	v.Set("journal.path", c.Journal.Path)
	v.Set("scenes.initial", c.Scenes.Initial)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
