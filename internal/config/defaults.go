package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the default mines configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 10,
			Prompt: true,
		},
		Rules: RulesConfig{
			SafeStart:     true,
			GameOverDelay: 5,
		},
		Display: DisplayConfig{
			Theme: ThemeEmoji,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMinesYAML
}
