package ai

import (
	"math"

	"github.com/amalg/bomberman-sim/internal/game"
)

// findNewGoal picks the first reachable goal by priority: nearest powerup,
// a bombing spot next to the nearest crate, a bombing spot next to the
// nearest opponent, then a random standable cell. Paths avoid danger.
func (c *Controller) findNewGoal(pos game.Position) {
	if pu, ok := c.nearestPowerup(pos); ok {
		if c.setPlan(pos, pu, StateCollectingPowerup) {
			return
		}
	}

	if crate, ok := c.nearestCrate(pos); ok {
		if spot, ok := c.bombingPosition(crate); ok && c.setPlan(pos, spot, StateMovingToBomb) {
			return
		}
	}

	if enemy, ok := c.nearestEnemy(pos); ok {
		if spot, ok := c.bombingPosition(enemy); ok && c.setPlan(pos, spot, StateHunting) {
			return
		}
	}

	c.exploreRandomly(pos)
}

// setPlan adopts a danger-avoiding path to goal and takes its first step.
// Plans that need no movement are rejected.
func (c *Controller) setPlan(pos, goal game.Position, state State) bool {
	path, ok := c.FindPath(pos, goal, true)
	if !ok || len(path) == 0 {
		return false
	}
	c.path = path
	c.goal = &goal
	c.state = state
	c.followPath()
	return true
}

func (c *Controller) nearestPowerup(pos game.Position) (game.Position, bool) {
	var nearest game.Position
	found := false
	minDist := math.MaxInt
	for _, pu := range c.sim.Powerups() {
		p := game.Position{X: pu.X, Y: pu.Y}
		if d := p.Manhattan(pos); d < minDist {
			minDist = d
			nearest = p
			found = true
		}
	}
	return nearest, found
}

func (c *Controller) nearestCrate(pos game.Position) (game.Position, bool) {
	board := c.sim.Board()
	var nearest game.Position
	found := false
	minDist := math.MaxInt
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			if board.At(x, y) != game.Crate {
				continue
			}
			p := game.Position{X: x, Y: y}
			if d := p.Manhattan(pos); d < minDist {
				minDist = d
				nearest = p
				found = true
			}
		}
	}
	return nearest, found
}

func (c *Controller) nearestEnemy(pos game.Position) (game.Position, bool) {
	var nearest game.Position
	found := false
	minDist := math.MaxInt
	for _, other := range c.sim.Players() {
		if other == c.player || !other.Alive {
			continue
		}
		p := other.Cell()
		if d := p.Manhattan(pos); d < minDist {
			minDist = d
			nearest = p
			found = true
		}
	}
	return nearest, found
}

// bombingPosition returns the first standable neighbour of target.
func (c *Controller) bombingPosition(target game.Position) (game.Position, bool) {
	for _, d := range directions {
		p := game.Position{X: target.X + d.X, Y: target.Y + d.Y}
		if c.CanMoveTo(p.X, p.Y) {
			return p, true
		}
	}
	return game.Position{}, false
}

func (c *Controller) exploreRandomly(pos game.Position) {
	board := c.sim.Board()
	var candidates []game.Position
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			if (x != pos.X || y != pos.Y) && c.CanMoveTo(x, y) {
				candidates = append(candidates, game.Position{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return
	}

	target := candidates[c.rnd.Intn(len(candidates))]
	c.setPlan(pos, target, StateExploring)
}
