package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/bomberman-sim/internal/game"
	"github.com/amalg/bomberman-sim/internal/match"
)

// tickMsg advances the match by one step.
type tickMsg time.Time

// Model is the Bubbletea model for a local match. It owns the tick loop;
// the human player, if any, is driven through the match's action queue.
type Model struct {
	match    *match.Match
	playerID int // -1 when spectating
	interval time.Duration
	started  bool
	quitting bool
}

// NewModel creates a TUI model for m. The first human player, if any, is
// the one controlled from the keyboard.
func NewModel(m *match.Match) Model {
	model := Model{
		match:    m,
		playerID: -1,
		interval: m.Config().TickInterval,
	}
	for _, p := range m.Sim().Players() {
		if p.IsHuman {
			model.playerID = p.ID
			break
		}
	}
	return model
}

// Init does nothing until the player presses Enter.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and step ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		if m.match.Finished() {
			return m, nil
		}
		m.match.Step(m.interval)
		return m, tick(m.interval)
	}

	return m, nil
}

// View renders the board with the HUD to its right.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	board := RenderBoard(m.match.Sim(), m.playerID)
	hud := RenderHUD(m.match, m.playerID, m.started)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "w":
		m.send(game.ActionMove, game.DirUp)
	case "down", "s":
		m.send(game.ActionMove, game.DirDown)
	case "left", "a":
		m.send(game.ActionMove, game.DirLeft)
	case "right", "d":
		m.send(game.ActionMove, game.DirRight)
	case " ":
		m.send(game.ActionPlaceBomb, 0)
	case "enter":
		if !m.started {
			m.started = true
			return m, tick(m.interval)
		}
	}

	return m, nil
}

func (m Model) send(t game.ActionType, dir game.Direction) {
	if m.playerID < 0 || !m.started {
		return
	}
	m.match.Enqueue(game.Action{PlayerID: m.playerID, Type: t, Dir: dir})
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
