package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// ErrSetupAborted is returned by RunSetup when the player quits the prompt.
var ErrSetupAborted = errors.New("tui: setup aborted")

// setup prompt fields
const (
	fieldWidth = iota
	fieldHeight
	fieldCount
)

var fieldNames = [fieldCount]string{"width", "height"}

// SetupModel asks for the board width and height, one after the other.
// An answer that is not a number counts as the default of 10; an answer
// outside the playable range is rejected and asked again.
type SetupModel struct {
	inputs     [fieldCount]textinput.Model
	values     [fieldCount]int
	focus      int
	errMsg     string
	done       bool
	aborted    bool
	quitOnDone bool
}

// NewSetupModel creates the size prompt. When quitOnDone is set the program
// exits once both answers are in; otherwise the caller polls Done.
func NewSetupModel(quitOnDone bool) SetupModel {
	m := SetupModel{quitOnDone: quitOnDone}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("Matrix %s? (default 10) ", fieldNames[i])
		ti.CharLimit = 4
		ti.Width = 6
		m.inputs[i] = ti
	}
	m.inputs[fieldWidth].Focus()
	return m
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done || m.aborted {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit accepts the focused answer or asks again.
func (m SetupModel) submit() (tea.Model, tea.Cmd) {
	n := config.ParseDimension(m.inputs[m.focus].Value())
	if !mines.ValidDimension(n) {
		m.errMsg = fmt.Sprintf("%s must be greater than %d and at most %d, got %d",
			fieldNames[m.focus], mines.MinDimension, mines.MaxDimension, n)
		m.inputs[m.focus].Reset()
		return m, nil
	}

	m.values[m.focus] = n
	m.errMsg = ""
	m.inputs[m.focus].Blur()
	m.focus++

	if m.focus == fieldCount {
		m.done = true
		if m.quitOnDone {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, m.inputs[m.focus].Focus()
}

// View renders the prompt.
func (m SetupModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Mines"))
	sb.WriteString("\n\n")

	for i := 0; i <= m.focus && i < fieldCount; i++ {
		sb.WriteString(m.inputs[i].View())
		sb.WriteRune('\n')
	}

	if m.errMsg != "" {
		sb.WriteString(errorStyle.Render(m.errMsg))
		sb.WriteRune('\n')
	}
	sb.WriteString(hintStyle.Render("enter confirm • esc quit"))
	sb.WriteRune('\n')
	return sb.String()
}

// Done reports whether both dimensions were accepted.
func (m SetupModel) Done() bool {
	return m.done
}

// Aborted reports whether the player left the prompt.
func (m SetupModel) Aborted() bool {
	return m.aborted
}

// Size returns the accepted width and height.
func (m SetupModel) Size() (width, height int) {
	return m.values[fieldWidth], m.values[fieldHeight]
}

// RunSetup runs the size prompt in the current terminal.
func RunSetup() (width, height int, err error) {
	final, err := tea.NewProgram(NewSetupModel(true)).Run()
	if err != nil {
		return 0, 0, err
	}

	m, ok := final.(SetupModel)
	if !ok || !m.Done() {
		return 0, 0, ErrSetupAborted
	}
	width, height = m.Size()
	return width, height, nil
}
