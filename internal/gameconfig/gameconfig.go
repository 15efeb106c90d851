// Package gameconfig loads and saves the sandbox preferences file.
// Preferences cover the window, overlays, and the builtin random world's
// shape; in-world state is never persisted.
package gameconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the preferences file, relative to the working directory.
const ConfigPath = "config/game.yaml"

// Worlds are the selectable start worlds, in number-key order.
var Worlds = []string{"flat", "pyramid", "checkerboard", "random", "hills"}

// Prefs holds the user-tunable settings. Persisted across runs.
type Prefs struct {
	WorldSize      int    `yaml:"world_size"`
	RandomBlocks   int    `yaml:"random_blocks"`
	MaxStackHeight int    `yaml:"max_stack_height"`
	StartWorld     string `yaml:"start_world"`
	ShowHelp       bool   `yaml:"show_help"`
	ShowFPS        bool   `yaml:"show_fps"`
	Fullscreen     bool   `yaml:"fullscreen"`
}

// Default returns the out-of-the-box preferences.
func Default() Prefs {
	return Prefs{
		WorldSize:      16,
		RandomBlocks:   20,
		MaxStackHeight: 3,
		StartWorld:     "flat",
		ShowHelp:       false,
		ShowFPS:        true,
		Fullscreen:     false,
	}
}

// Load reads preferences from path. A missing or unparseable file returns
// Default() without error: the sandbox must start even when the config
// was hand-edited badly. A file that parses but fails validation is an
// error, so typos in world names surface at startup instead of silently
// picking another world.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(p Prefs, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the loaded values.
func (p Prefs) Validate() error {
	if p.WorldSize <= 0 {
		return errors.New("world_size must be positive")
	}
	if p.RandomBlocks < 0 {
		return errors.New("random_blocks cannot be negative")
	}
	if p.MaxStackHeight < 1 {
		return errors.New("max_stack_height must be at least 1")
	}
	for _, w := range Worlds {
		if p.StartWorld == w {
			return nil
		}
	}
	return fmt.Errorf("unknown start_world %q", p.StartWorld)
}
