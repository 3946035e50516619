package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// DefaultGameOverDelay is how long the final board stays up before the runner exits.
const DefaultGameOverDelay = 5 * time.Second

// Options tune the game runner.
type Options struct {
	// GameOverDelay is how long to show the final board before quitting.
	// Zero quits as soon as the game ends.
	GameOverDelay time.Duration

	// Logger receives game results at debug level. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the runner defaults.
func DefaultOptions() Options {
	return Options{GameOverDelay: DefaultGameOverDelay}
}

// Model is the Bubble Tea model for running a game.
// Input is applied as soon as a key arrives; the only timer is the
// game-over countdown.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	gameState core.GameState

	gen       int // Bumped on every reset
	countdown int // Seconds left before quitting, while game over
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// The returned error comes from the game's Reset; the model is still usable
// and shows the error until the player quits.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		logger:    logger,
	}
	err := game.Reset(cfg)
	m.gameState = game.State()
	return m, err
}

// gameHeight reserves the last terminal row for the help footer.
func gameHeight(screenH int) int {
	return core.Max(screenH-1, 1)
}

// Init implements tea.Model. Nothing runs until the first key.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case countdownMsg:
		return m.handleCountdown(msg)
	}

	return m, nil
}

// handleKey maps the key to an action and applies it immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		return m.gameOver()
	}
	return m, nil
}

// restart starts a new game with the same board size and a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("restart failed", "game", m.game.ID(), "error", err)
	}
	m.gameState = m.game.State()
	m.gen++
	m.countdown = 0
	m.logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// gameOver logs the result and starts the countdown.
func (m Model) gameOver() (tea.Model, tea.Cmd) {
	m.logger.Debug("game over",
		"game", m.game.ID(),
		"won", m.gameState.Won,
		"score", m.gameState.Score,
	)

	m.countdown = int(m.opts.GameOverDelay / time.Second)
	if m.countdown <= 0 {
		m.quitting = true
		return m, tea.Quit
	}
	return m, countdownCmd(m.gen)
}

// handleCountdown ticks the game-over countdown down and quits at zero.
func (m Model) handleCountdown(msg countdownMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.gameState.GameOver {
		return m, nil
	}

	m.countdown--
	if m.countdown <= 0 {
		m.quitting = true
		return m, tea.Quit
	}
	return m, countdownCmd(m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.footer())
	return sb.String()
}

func (m Model) footer() string {
	if m.gameState.GameOver && m.countdown > 0 {
		return bannerStyle.Render(fmt.Sprintf("Closing in %ds", m.countdown)) +
			hintStyle.Render("  r restart • q quit")
	}
	return m.help.View(m.keyMapper.Keys())
}

// GameState returns the last observed game state.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Countdown returns the seconds left before the runner exits after game over.
func (m Model) Countdown() int {
	return m.countdown
}

// IsQuitting returns true if the runner is exiting.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
