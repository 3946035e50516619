package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var (
	flagWidth   int
	flagHeight  int
	flagClassic bool
	flagTheme   string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without a game argument the safe-start mode is used,
where the first reveal never hits a mine.

Unless --width or --height is given (or the config disables the prompt),
the board size is asked for first. Each side must be greater than 3 and
at most 100; anything that is not a number means 10.

Controls:
  WASD/Arrows - Move cursor
  Space       - Reveal cell
  F           - Toggle flag
  Esc         - End game and show the board
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  mines play
  mines play --width 30 --height 16
  mines play --classic
  mines play mines_classic --theme ascii
  mines play --config ./my-mines.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (skips the size prompt)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (skips the size prompt)")
	playCmd.Flags().BoolVar(&flagClassic, "classic", false, "Place mines without a safe first reveal")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Glyph theme: emoji, ascii")
}

// playPlan is everything needed to start a local game.
type playPlan struct {
	GameID  string
	Runtime core.RuntimeConfig
	Prompt  bool // Ask for the board size before starting
	Delay   time.Duration
}

// playFlags carries the command-line overrides; zero values mean unset.
type playFlags struct {
	Width   int
	Height  int
	Classic bool
	Theme   string
	Seed    int64
}

// resolvePlay merges config, arguments and flags into a plan.
func resolvePlay(cfg config.MinesConfig, args []string, f playFlags) (playPlan, error) {
	gameID := minesweeper.IDSafe
	if !cfg.Rules.SafeStart {
		gameID = minesweeper.IDClassic
	}
	if len(args) > 0 {
		gameID = args[0]
	}
	if f.Classic {
		gameID = minesweeper.IDClassic
	}
	if !registry.Exists(gameID) {
		return playPlan{}, fmt.Errorf("unknown game %q", gameID)
	}

	plan := playPlan{
		GameID:  gameID,
		Runtime: cfg.Apply(core.DefaultConfig()),
		Prompt:  cfg.Board.Prompt && f.Width == 0 && f.Height == 0,
		Delay:   time.Duration(cfg.Rules.GameOverDelay) * time.Second,
	}
	plan.Runtime.Seed = f.Seed

	if f.Width != 0 {
		plan.Runtime.BoardW = f.Width
	}
	if f.Height != 0 {
		plan.Runtime.BoardH = f.Height
	}
	if !mines.ValidDimension(plan.Runtime.BoardW) || !mines.ValidDimension(plan.Runtime.BoardH) {
		return playPlan{}, fmt.Errorf("%w: board %dx%d, each side must be greater than %d and at most %d",
			mines.ErrInvalidDimension, plan.Runtime.BoardW, plan.Runtime.BoardH, mines.MinDimension, mines.MaxDimension)
	}

	switch f.Theme {
	case "":
	case config.ThemeEmoji, config.ThemeASCII:
		plan.Runtime.Theme = f.Theme
	default:
		return playPlan{}, fmt.Errorf("unknown theme %q", f.Theme)
	}

	return plan, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := playLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.LoadMines(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plan, err := resolvePlay(cfg, args, playFlags{
		Width:   flagWidth,
		Height:  flagHeight,
		Classic: flagClassic,
		Theme:   flagTheme,
		Seed:    flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available games.")
		os.Exit(1)
	}

	if plan.Prompt {
		w, h, setupErr := tui.RunSetup()
		if errors.Is(setupErr, tui.ErrSetupAborted) {
			return
		}
		if setupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", setupErr)
			os.Exit(1)
		}
		plan.Runtime.BoardW, plan.Runtime.BoardH = w, h
	}

	// Get terminal size
	plan.Runtime.ScreenW, plan.Runtime.ScreenH = 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		plan.Runtime.ScreenW = w
		plan.Runtime.ScreenH = h
	}

	game, err := registry.Create(plan.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting game",
		"game", plan.GameID,
		"width", plan.Runtime.BoardW,
		"height", plan.Runtime.BoardH,
		"seed", plan.Runtime.Seed,
	)

	if err := tui.Run(game, plan.Runtime, tui.Options{GameOverDelay: plan.Delay, Logger: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
