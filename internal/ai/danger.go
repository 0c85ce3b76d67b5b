package ai

import (
	"math"
	"time"

	"github.com/amalg/bomberman-sim/internal/game"
)

// DangerMax marks a cell that is burning right now.
const DangerMax = time.Duration(math.MaxInt64)

// imminent is the danger reported for a bomb whose fuse is already spent.
const imminent = time.Nanosecond

// DangerLevel returns how soon (x, y) will be engulfed: the shortest
// remaining fuse among bombs whose blast reaches the cell unobstructed by
// walls, DangerMax if an explosion is burning there or the cell is off the
// board, or 0 when no known threat covers it.
func DangerLevel(sim *game.Simulation, x, y int) time.Duration {
	if !sim.Board().InBounds(x, y) || sim.ExplosionAt(x, y) {
		return DangerMax
	}

	var danger time.Duration
	cell := game.Position{X: x, Y: y}
	for _, b := range sim.Bombs() {
		if !InBlast(sim.Board(), b.Pos(), b.Power, cell) {
			continue
		}
		fuse := max(b.Timer, imminent)
		if danger == 0 || fuse < danger {
			danger = fuse
		}
	}
	return danger
}

// InBlast reports whether a bomb of the given power at origin would reach
// cell. Only walls between the two cells shield it.
func InBlast(board *game.Board, origin game.Position, power int, cell game.Position) bool {
	if origin == cell {
		return true
	}

	switch {
	case origin.Y == cell.Y && abs(cell.X-origin.X) <= power:
		step := sign(cell.X - origin.X)
		for x := origin.X + step; x != cell.X; x += step {
			if board.At(x, origin.Y) == game.Wall {
				return false
			}
		}
		return true
	case origin.X == cell.X && abs(cell.Y-origin.Y) <= power:
		step := sign(cell.Y - origin.Y)
		for y := origin.Y + step; y != cell.Y; y += step {
			if board.At(origin.X, y) == game.Wall {
				return false
			}
		}
		return true
	}
	return false
}

// threatened reports whether any live bomb's blast covers cell.
func threatened(sim *game.Simulation, cell game.Position) bool {
	for _, b := range sim.Bombs() {
		if InBlast(sim.Board(), b.Pos(), b.Power, cell) {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
