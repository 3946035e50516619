// Package config provides YAML-based game configuration loading
// and validation for the mines game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Glyph theme names accepted in DisplayConfig.Theme.
const (
	ThemeEmoji = "emoji"
	ThemeASCII = "ascii"
)

// MinesConfig contains all configuration for the mines game.
type MinesConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the board size.
type BoardConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Prompt bool `yaml:"prompt"` // Ask for the size at startup
}

// RulesConfig defines gameplay rules.
type RulesConfig struct {
	SafeStart     bool `yaml:"safe_start"`      // First reveal never hits a mine
	GameOverDelay int  `yaml:"game_over_delay"` // Seconds before closing after game over
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	Theme string `yaml:"theme"`
}

// Validate checks that the configuration describes a playable game.
func (c MinesConfig) Validate() error {
	if !mines.ValidDimension(c.Board.Width) {
		return fmt.Errorf("config: board width %d out of range (%d, %d]",
			c.Board.Width, mines.MinDimension, mines.MaxDimension)
	}
	if !mines.ValidDimension(c.Board.Height) {
		return fmt.Errorf("config: board height %d out of range (%d, %d]",
			c.Board.Height, mines.MinDimension, mines.MaxDimension)
	}
	if c.Rules.GameOverDelay < 0 {
		return fmt.Errorf("config: game_over_delay must not be negative, got %d", c.Rules.GameOverDelay)
	}
	switch c.Display.Theme {
	case ThemeEmoji, ThemeASCII:
	default:
		return fmt.Errorf("config: unknown theme %q", c.Display.Theme)
	}
	return nil
}
