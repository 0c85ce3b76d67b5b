package game

import "strings"

// Text-render symbols for entities drawn over the board.
const (
	SymbolPlayer    = 'P'
	SymbolExplosion = 'X'
)

// RenderString draws the simulation one character per cell, rows separated
// by newlines with no trailing newline.
//
// Priority: Player > Explosion > Powerup > Bomb/Terrain. A powerup renders
// as the uppercased first letter of its type (B, P, S).
func (s *Simulation) RenderString() string {
	var sb strings.Builder
	sb.Grow((s.board.Width + 1) * s.board.Height)

	for y := 0; y < s.board.Height; y++ {
		for x := 0; x < s.board.Width; x++ {
			sb.WriteByte(s.cellSymbol(x, y))
		}
		if y < s.board.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (s *Simulation) cellSymbol(x, y int) byte {
	if _, ok := s.PlayerAt(x, y); ok {
		return SymbolPlayer
	}
	if s.ExplosionAt(x, y) {
		return SymbolExplosion
	}
	if pu, ok := s.PowerupAt(x, y); ok {
		return pu.Type.Symbol()
	}
	return s.board.At(x, y).String()[0]
}
