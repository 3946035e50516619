// mines is a mine-clearing puzzle played in the terminal.
//
// Usage:
//
//	mines play [game]   - Play a game (default: mines)
//	mines list          - List available game modes
//	mines serve         - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible mine placement
//	--config <path>      - Path to a mines.yaml config file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file during local play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Mines - clear the minefield in your terminal",
	Long: `Mines is a terminal mine-clearing puzzle. Reveal every safe cell and
flag every mine to win; reveal a mine and the game is over.

Available commands:
  list     - Show all game modes
  play     - Play a game
  serve    - Start SSH server for remote play

Examples:
  mines play
  mines play --width 20 --height 12
  mines play mines_classic --theme ascii
  mines serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom mines config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file during local play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
