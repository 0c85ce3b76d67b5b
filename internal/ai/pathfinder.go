package ai

import "github.com/amalg/bomberman-sim/internal/game"

type pathNode struct {
	pos     game.Position
	g, h, f int
	parent  *pathNode
}

var directions = []game.Position{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// CanMoveTo reports whether the controlled player could stand on (x, y):
// inside the board, not a wall or crate, no bomb unless it is the cell the
// player already occupies, and no other living player there.
func (c *Controller) CanMoveTo(x, y int) bool {
	board := c.sim.Board()
	if !board.InBounds(x, y) {
		return false
	}
	if t := board.At(x, y); t == game.Wall || t == game.Crate {
		return false
	}

	me := c.player.Cell()
	if _, ok := c.sim.BombAt(x, y); ok && (x != me.X || y != me.Y) {
		return false
	}
	if other, ok := c.sim.PlayerAt(x, y); ok && other != c.player {
		return false
	}
	return true
}

// FindPath runs A* with a Manhattan heuristic over 4-connected cells of
// uniform cost. The open set is scanned linearly for the lowest f, with
// ties going to the earliest inserted node. With avoidDanger set, cells
// with any danger are skipped. The returned waypoints exclude start and end
// at goal; ok is false when goal cannot be reached.
func (c *Controller) FindPath(start, goal game.Position, avoidDanger bool) (path []game.Position, ok bool) {
	open := []*pathNode{{pos: start}}
	closed := make(map[game.Position]bool)

	for len(open) > 0 {
		best := 0
		for i, n := range open[1:] {
			if n.f < open[best].f {
				best = i + 1
			}
		}
		current := open[best]
		open = append(open[:best], open[best+1:]...)

		if current.pos == goal {
			return reconstruct(current), true
		}
		closed[current.pos] = true

		for _, d := range directions {
			next := game.Position{X: current.pos.X + d.X, Y: current.pos.Y + d.Y}
			if closed[next] {
				continue
			}
			if !c.CanMoveTo(next.X, next.Y) {
				continue
			}
			if avoidDanger && DangerLevel(c.sim, next.X, next.Y) > 0 {
				continue
			}

			g := current.g + 1
			h := next.Manhattan(goal)
			if existing := findNode(open, next); existing != nil {
				if g < existing.g {
					existing.g = g
					existing.f = g + existing.h
					existing.parent = current
				}
				continue
			}
			open = append(open, &pathNode{pos: next, g: g, h: h, f: g + h, parent: current})
		}
	}
	return nil, false
}

func findNode(nodes []*pathNode, pos game.Position) *pathNode {
	for _, n := range nodes {
		if n.pos == pos {
			return n
		}
	}
	return nil
}

// reconstruct walks parent links back to the start and reverses them.
func reconstruct(end *pathNode) []game.Position {
	path := make([]game.Position, 0, end.g)
	for n := end; n.parent != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
