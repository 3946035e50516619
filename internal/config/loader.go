package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-mines/internal/core"
)

const configFile = "mines.yaml"

// LoadMines loads the mines configuration.
// Search order: customPath -> ~/.mines/configs/mines.yaml -> ./configs/mines.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadMines(customPath string) (MinesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMinesConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultMinesConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultMinesYAML)
	if err != nil {
		return DefaultMinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML over the hard-coded defaults and validates the result.
func decode(data []byte) (MinesConfig, error) {
	cfg := DefaultMinesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", "configs", filename)
}

// ParseDimension interprets a typed board dimension.
// Anything that is not an integer yields the default of 10.
func ParseDimension(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return core.DefaultBoardW
	}
	return n
}

// Apply copies the configuration into a runtime config.
func (c MinesConfig) Apply(rc core.RuntimeConfig) core.RuntimeConfig {
	rc.BoardW = c.Board.Width
	rc.BoardH = c.Board.Height
	rc.Theme = c.Display.Theme
	return rc
}
