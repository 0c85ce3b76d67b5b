package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/bomberman-sim/internal/game"
	"github.com/amalg/bomberman-sim/internal/match"
)

// Color palette
var (
	// Tile styles
	wallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a3a")).
			Foreground(lipgloss.Color("#555555"))

	crateStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B6914")).
			Foreground(lipgloss.Color("#A0772B"))

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#1a1a2e"))

	bombStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	fireStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff6600")).
			Foreground(lipgloss.Color("#ffcc00")).
			Bold(true)

	powerupStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#44ffff")).
			Bold(true)

	// Player colors, cycled by id
	playerColors = []lipgloss.Color{
		lipgloss.Color("#00ff88"), // Green
		lipgloss.Color("#4488ff"), // Blue
		lipgloss.Color("#ff44ff"), // Magenta
		lipgloss.Color("#ffff44"), // Yellow
	}

	deadPlayerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Strikethrough(true)

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	lobbyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// RenderBoard converts the simulation into a styled terminal string.
// Each cell is 2 characters wide for a square-ish appearance.
func RenderBoard(sim *game.Simulation, myID int) string {
	if sim == nil {
		return "No simulation"
	}

	board := sim.Board()
	rows := make([]string, 0, board.Height)
	for y := 0; y < board.Height; y++ {
		var sb strings.Builder
		for x := 0; x < board.Width; x++ {
			sb.WriteString(renderCell(sim, x, y, myID))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderCell uses the same precedence as the plain-text renderer:
// player > explosion > powerup > bomb > terrain.
func renderCell(sim *game.Simulation, x, y, myID int) string {
	if p, ok := sim.PlayerAt(x, y); ok {
		color := playerColors[p.ID%len(playerColors)]
		style := lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(color).
			Bold(true)

		label := fmt.Sprintf("P%d", p.ID+1)
		if p.ID == myID {
			label = "██"
			style = style.Background(color)
		}
		return style.Render(label)
	}

	if sim.ExplosionAt(x, y) {
		return fireStyle.Render("░░")
	}

	if pu, ok := sim.PowerupAt(x, y); ok {
		return powerupStyle.Render("+" + string(pu.Type.Symbol()))
	}

	switch sim.Board().At(x, y) {
	case game.Wall:
		return wallStyle.Render("██")
	case game.Crate:
		return crateStyle.Render("▒▒")
	case game.BombTile:
		return bombStyle.Render("()")
	default:
		return emptyStyle.Render("  ")
	}
}

// RenderHUD renders the heads-up display showing player info and match status.
func RenderHUD(m *match.Match, myID int, started bool) string {
	if m == nil {
		return ""
	}
	sim := m.Sim()

	var parts []string

	parts = append(parts, titleStyle.Render("BOMBERMAN"))
	parts = append(parts, dimStyle.Render(fmt.Sprintf("seed %d  tick %d/%d", sim.Config.Seed, m.Ticks(), m.Config().MaxTicks)))
	parts = append(parts, "")

	switch {
	case !started:
		parts = append(parts, lobbyStyle.Render("Ready"))
		parts = append(parts, "   Press [Enter] to start!")
	case sim.GameOver():
		if w, ok := sim.Winner(); ok {
			parts = append(parts, winnerStyle.Render(fmt.Sprintf("P%d WINS!", w.ID+1)))
		} else {
			parts = append(parts, dimStyle.Render("DRAW - Everyone died!"))
		}
	case m.Finished():
		parts = append(parts, dimStyle.Render("Time up"))
	default:
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render("GAME IN PROGRESS"))
	}
	parts = append(parts, "")

	agents := make(map[int]string)
	for _, c := range m.Controllers() {
		agents[c.Player().ID] = c.State().String()
	}

	parts = append(parts, dimStyle.Render("Players:"))
	for _, p := range sim.Players() {
		nameStyle := lipgloss.NewStyle().Foreground(playerColors[p.ID%len(playerColors)])
		status := "alive"
		if !p.Alive {
			status = "dead "
			nameStyle = deadPlayerStyle
		}

		marker := "  "
		if p.ID == myID {
			marker = "→ "
		}

		line := fmt.Sprintf("%s%s %s [bombs %d/%d power %d speed %.1f]",
			marker,
			nameStyle.Render(fmt.Sprintf("P%d", p.ID+1)),
			status,
			p.MaxBombs-p.ActiveBombs,
			p.MaxBombs,
			p.BombPower,
			p.Speed,
		)
		if state, ok := agents[p.ID]; ok && p.Alive {
			line += " " + dimStyle.Render(state)
		}
		parts = append(parts, line)
	}

	stats := m.Stats()
	parts = append(parts, "")
	parts = append(parts, dimStyle.Render(fmt.Sprintf("bombs %d  crates %d  pickups %d",
		stats.BombsPlaced, stats.CratesDestroyed, stats.PowerupsCollected)))

	parts = append(parts, "")
	if myID >= 0 {
		parts = append(parts, dimStyle.Render("WASD/Arrows: Move | Space: Bomb | Q: Quit"))
	} else {
		parts = append(parts, dimStyle.Render("Spectating | Q: Quit"))
	}

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
