// Package ai drives non-human players. A Controller makes exactly one
// decision per tick for its player and acts only through the simulation's
// mutators.
package ai

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/amalg/bomberman-sim/internal/game"
	"github.com/amalg/bomberman-sim/internal/rng"
)

// State is the controller's latest decision, kept for diagnostics.
type State int

const (
	StateIdle State = iota
	StateEscaping
	StateBombing
	StateFollowingPath
	StateExploring
	StateCollectingPowerup
	StateMovingToBomb
	StateHunting
	StateStuck
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEscaping:
		return "escaping"
	case StateBombing:
		return "bombing"
	case StateFollowingPath:
		return "following-path"
	case StateExploring:
		return "exploring"
	case StateCollectingPowerup:
		return "collecting-powerup"
	case StateMovingToBomb:
		return "moving-to-bomb"
	case StateHunting:
		return "hunting"
	case StateStuck:
		return "stuck"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Controller plans and acts for one player.
type Controller struct {
	sim    *game.Simulation
	player *game.Player
	config Config
	rnd    *rng.Source
	logger *slog.Logger

	state    State
	goal     *game.Position
	path     []game.Position
	cooldown time.Duration

	lastBombTime time.Duration
	lastPos      game.Position
	stuckFor     time.Duration
	stuckResets  int
}

// NewController attaches a controller to player. A nil logger discards output.
func NewController(sim *game.Simulation, player *game.Player, config Config, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		sim:    sim,
		player: player,
		config: config,
		rnd:    rng.FromInt64(config.Seed),
		logger: logger,
	}
	if player != nil {
		c.lastPos = player.Cell()
		c.logger = logger.With("player", player.ID)
	}
	return c
}

// Player returns the controlled player.
func (c *Controller) Player() *game.Player { return c.player }

// State returns the latest decision.
func (c *Controller) State() State { return c.state }

// Path returns the remaining waypoints of the current plan.
func (c *Controller) Path() []game.Position { return c.path }

// Goal returns the target of the current plan.
func (c *Controller) Goal() (game.Position, bool) {
	if c.goal == nil {
		return game.Position{}, false
	}
	return *c.goal, true
}

// StuckResets counts how often the plan was dropped for lack of progress.
func (c *Controller) StuckResets() int { return c.stuckResets }

// Update runs one decision for the elapsed dt. The priority order is:
// escape imminent danger, bomb a worthwhile target when an escape exists,
// keep following the current path, otherwise pick a new goal.
func (c *Controller) Update(dt time.Duration) {
	p := c.player
	if p == nil || !p.Alive {
		return
	}

	c.cooldown = max(0, c.cooldown-dt)
	if c.cooldown > 0 {
		return
	}

	pos := p.Cell()
	c.detectStuck(pos, dt)

	danger := DangerLevel(c.sim, pos.X, pos.Y)
	switch {
	case danger > 0 && danger < c.config.EscapeThreshold:
		c.state = StateEscaping
		c.planEscape(pos)
	case c.shouldBomb(pos):
		c.state = StateBombing
		c.placeBombAndEscape(pos)
	case len(c.path) > 0:
		c.state = StateFollowingPath
		c.followPath()
	default:
		c.state = StateExploring
		c.findNewGoal(pos)
	}
}

func (c *Controller) detectStuck(pos game.Position, dt time.Duration) {
	if pos != c.lastPos {
		c.stuckFor = 0
		c.lastPos = pos
		return
	}

	c.stuckFor += dt
	if c.stuckFor > c.config.StuckThreshold {
		if len(c.path) > 0 || c.goal != nil {
			c.logger.Debug("dropping plan, no progress", "x", pos.X, "y", pos.Y, "idle", c.stuckFor)
		}
		c.state = StateStuck
		c.path = nil
		c.goal = nil
		c.stuckResets++
	}
}

// shouldBomb checks capacity, pacing, a target next to pos, and an escape.
func (c *Controller) shouldBomb(pos game.Position) bool {
	p := c.player
	if p.ActiveBombs >= p.MaxBombs {
		return false
	}
	if c.sim.GameTime()-c.lastBombTime < c.config.MinBombInterval {
		return false
	}
	if len(c.adjacentTargets(pos)) == 0 {
		return false
	}
	return c.canEscapeFrom(pos)
}

// adjacentTargets lists neighbouring crates and opponents.
func (c *Controller) adjacentTargets(pos game.Position) []game.Position {
	var targets []game.Position
	for _, d := range directions {
		n := game.Position{X: pos.X + d.X, Y: pos.Y + d.Y}
		if !c.sim.Board().InBounds(n.X, n.Y) {
			continue
		}
		if c.sim.Board().At(n.X, n.Y) == game.Crate {
			targets = append(targets, n)
		}
		if other, ok := c.sim.PlayerAt(n.X, n.Y); ok && other != c.player {
			targets = append(targets, n)
		}
	}
	return targets
}

// canEscapeFrom reports whether a bomb dropped at pos would leave a cell
// outside every blast reachable within MaxEscapeSteps moves.
func (c *Controller) canEscapeFrom(pos game.Position) bool {
	board := c.sim.Board()
	power := c.player.BombPower
	limit := c.config.MaxEscapeSteps

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			cell := game.Position{X: x, Y: y}
			if cell.Manhattan(pos) > limit || !c.CanMoveTo(x, y) {
				continue
			}
			if InBlast(board, pos, power, cell) || threatened(c.sim, cell) {
				continue
			}
			path, ok := c.FindPath(pos, cell, true)
			if ok && len(path) > 0 && len(path) <= limit {
				return true
			}
		}
	}
	return false
}

func (c *Controller) placeBombAndEscape(pos game.Position) {
	if c.sim.PlaceBomb(c.player) {
		c.lastBombTime = c.sim.GameTime()
		c.logger.Debug("placed bomb", "x", pos.X, "y", pos.Y, "game_time", c.lastBombTime)
	}
	c.planEscape(pos)
}

// planEscape heads for the nearest reachable cell no bomb threatens. The
// route itself may cross danger. Without any route it takes the safest
// single step instead.
func (c *Controller) planEscape(pos game.Position) {
	for _, safe := range c.safeCellsByDistance(pos) {
		path, ok := c.FindPath(pos, safe, false)
		if !ok || len(path) == 0 {
			continue
		}
		goal := safe
		c.path = path
		c.goal = &goal
		c.followPath()
		return
	}
	c.tryDirectionalEscape(pos)
}

// safeCellsByDistance returns danger-free standable cells ordered by
// Manhattan distance from pos, scan order breaking ties.
func (c *Controller) safeCellsByDistance(pos game.Position) []game.Position {
	board := c.sim.Board()
	buckets := make([][]game.Position, board.Width+board.Height)
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			if DangerLevel(c.sim, x, y) != 0 || !c.CanMoveTo(x, y) {
				continue
			}
			cell := game.Position{X: x, Y: y}
			d := cell.Manhattan(pos)
			if d >= len(buckets) {
				d = len(buckets) - 1
			}
			buckets[d] = append(buckets[d], cell)
		}
	}

	var cells []game.Position
	for _, b := range buckets {
		cells = append(cells, b...)
	}
	return cells
}

// tryDirectionalEscape steps to the neighbour with the best immediate
// safety score: 1000 for a danger-free cell, otherwise minus its danger in
// milliseconds. The first neighbour wins ties.
func (c *Controller) tryDirectionalEscape(pos game.Position) {
	var best *game.Position
	var bestSafety float64
	for _, d := range []game.Position{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}} {
		n := game.Position{X: pos.X + d.X, Y: pos.Y + d.Y}
		if !c.CanMoveTo(n.X, n.Y) {
			continue
		}

		safety := 1000.0
		if danger := DangerLevel(c.sim, n.X, n.Y); danger != 0 {
			safety = -float64(danger) / float64(time.Millisecond)
		}
		if best == nil || safety > bestSafety {
			step := d
			best = &step
			bestSafety = safety
		}
	}

	if best != nil {
		c.move(best.X, best.Y)
	}
}

// followPath drops every waypoint already reached, then takes at most one
// step toward the next one.
func (c *Controller) followPath() {
	pos := c.player.Cell()
	for len(c.path) > 0 && c.path[0] == pos {
		c.path = c.path[1:]
	}
	if len(c.path) == 0 {
		return
	}

	next := c.path[0]
	c.move(sign(next.X-pos.X), sign(next.Y-pos.Y))
}

// move re-validates the target cell and, if the simulation accepts the
// step, starts the speed-scaled cooldown.
func (c *Controller) move(dx, dy int) {
	pos := c.player.Cell()
	if !c.CanMoveTo(pos.X+dx, pos.Y+dy) {
		return
	}
	if c.sim.MovePlayer(c.player, dx, dy) {
		c.cooldown = time.Duration(float64(c.config.BaseMoveCooldown) / c.player.Speed)
	}
}
