// Package match drives a Simulation and its AI controllers tick by tick.
package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/amalg/bomberman-sim/internal/ai"
	"github.com/amalg/bomberman-sim/internal/game"
)

// Config describes one match.
type Config struct {
	Game         game.GameConfig
	AI           ai.Config     // Zero value means ai.DefaultConfig()
	Agents       int           // AI-controlled players
	Humans       int           // Players driven through Enqueue
	MaxTicks     int           // Stop after this many steps
	TickInterval time.Duration // Simulated time per step
	Realtime     bool          // Pace steps to wall-clock TickInterval
}

// DefaultConfig returns a two-agent headless match on the classic board.
func DefaultConfig() Config {
	return Config{
		Game:         game.DefaultConfig(),
		AI:           ai.DefaultConfig(),
		Agents:       2,
		MaxTicks:     100,
		TickInterval: 100 * time.Millisecond,
	}
}

// Stats counts notable events over a match.
type Stats struct {
	Updates           int `json:"updates"`
	BombsPlaced       int `json:"bombs_placed"`
	CratesDestroyed   int `json:"crates_destroyed"`
	PowerupsCollected int `json:"powerups_collected"`
}

// Result summarizes a finished or interrupted match.
type Result struct {
	ID       uuid.UUID     `json:"id"`
	Seed     int64         `json:"seed"`
	Ticks    int           `json:"ticks"`
	GameTime time.Duration `json:"game_time"`
	Over     bool          `json:"over"`
	Alive    int           `json:"alive"`
	WinnerID int           `json:"winner_id"` // -1 without a winner
	Draw     bool          `json:"draw"`      // Over with nobody alive
	Stats    Stats         `json:"stats"`
	Final    string        `json:"final"`
}

// Match owns one simulation. Step is not safe for concurrent use;
// Enqueue may be called from any goroutine.
type Match struct {
	ID uuid.UUID

	config      Config
	sim         *game.Simulation
	controllers []*ai.Controller
	actions     chan game.Action
	onStep      func(*Match)
	logger      *slog.Logger

	ticks int
	stats Stats
}

// New validates cfg, builds the simulation and seats humans first, then
// agents, on the spawn corners in order. Player ids follow seat order.
func New(cfg Config, logger *slog.Logger) (*Match, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if cfg.Agents < 0 || cfg.Humans < 0 {
		return nil, errors.New("player counts must not be negative")
	}

	spawns := game.SpawnPositions(cfg.Game.Width, cfg.Game.Height)
	seats := cfg.Agents + cfg.Humans
	switch {
	case seats == 0:
		return nil, errors.New("match needs at least one player")
	case seats > len(spawns):
		return nil, fmt.Errorf("%d players do not fit %d spawn corners", seats, len(spawns))
	case cfg.Game.MaxPlayers > 0 && seats > cfg.Game.MaxPlayers:
		return nil, fmt.Errorf("%d players exceed the limit of %d", seats, cfg.Game.MaxPlayers)
	}

	if cfg.AI == (ai.Config{}) {
		cfg.AI = ai.DefaultConfig()
	}
	if cfg.MaxTicks <= 0 {
		cfg.MaxTicks = 100
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Match{
		ID:      uuid.New(),
		config:  cfg,
		sim:     game.NewSimulation(cfg.Game),
		actions: make(chan game.Action, 256),
	}
	m.logger = logger.With("match", m.ID.String())

	for _, spawn := range spawns[:seats] {
		if m.sim.Board().At(spawn.X, spawn.Y) == game.Wall {
			return nil, fmt.Errorf("spawn %v is a wall on a %dx%d board; use odd dimensions", spawn, cfg.Game.Width, cfg.Game.Height)
		}
	}
	for i, spawn := range spawns[:seats] {
		human := i < cfg.Humans
		p := m.sim.CreatePlayer(i, spawn.X, spawn.Y, human)
		if human {
			continue
		}
		aiCfg := cfg.AI
		aiCfg.Seed = cfg.Game.Seed + int64(i)
		m.controllers = append(m.controllers, ai.NewController(m.sim, p, aiCfg, m.logger))
	}
	return m, nil
}

// Sim returns the driven simulation.
func (m *Match) Sim() *game.Simulation { return m.sim }

// Config returns the effective configuration.
func (m *Match) Config() Config { return m.config }

// Controllers returns the agents in creation order.
func (m *Match) Controllers() []*ai.Controller { return m.controllers }

// Ticks returns the number of completed steps.
func (m *Match) Ticks() int { return m.ticks }

// Stats returns the counters so far.
func (m *Match) Stats() Stats { return m.stats }

// OnStep sets a callback invoked after every step.
func (m *Match) OnStep(fn func(*Match)) {
	m.onStep = fn
}

// Enqueue queues an action for the next step. Actions beyond the queue
// capacity are dropped.
func (m *Match) Enqueue(a game.Action) {
	select {
	case m.actions <- a:
	default:
	}
}

// Finished reports whether the game is over or the tick budget is spent.
func (m *Match) Finished() bool {
	return m.sim.GameOver() || m.ticks >= m.config.MaxTicks
}

// Step advances the match by dt: queued actions, then every controller in
// creation order, then one simulation update.
func (m *Match) Step(dt time.Duration) {
	bombsBefore := len(m.sim.Bombs())
	pickupsBefore := m.pickups()

	m.drainActions()
	for _, c := range m.controllers {
		c.Update(dt)
	}

	placed := len(m.sim.Bombs()) - bombsBefore
	cratesBefore := m.sim.Board().CountCrates()
	m.sim.Update(dt)

	m.ticks++
	m.stats.Updates++
	m.stats.BombsPlaced += placed
	m.stats.CratesDestroyed += cratesBefore - m.sim.Board().CountCrates()
	m.stats.PowerupsCollected += m.pickups() - pickupsBefore

	if m.onStep != nil {
		m.onStep(m)
	}
}

func (m *Match) drainActions() {
	for {
		select {
		case a := <-m.actions:
			m.sim.Apply(a)
		default:
			return
		}
	}
}

func (m *Match) pickups() int {
	n := 0
	for _, p := range m.sim.Players() {
		n += len(p.Powerups)
	}
	return n
}

// Run steps the match until it is finished. In realtime mode each step
// waits for the next TickInterval slot and a cancelled ctx ends the run
// with ctx's error; otherwise ctx is only checked between steps.
func (m *Match) Run(ctx context.Context) (Result, error) {
	m.logger.Info("match started",
		"seed", m.config.Game.Seed,
		"width", m.config.Game.Width,
		"height", m.config.Game.Height,
		"agents", m.config.Agents,
		"humans", m.config.Humans,
	)

	var limiter *rate.Limiter
	if m.config.Realtime {
		limiter = rate.NewLimiter(rate.Every(m.config.TickInterval), 1)
	}

	for !m.Finished() {
		var err error
		if limiter != nil {
			err = limiter.Wait(ctx)
		} else {
			err = ctx.Err()
		}
		if err != nil {
			m.logger.Warn("match interrupted", "ticks", m.ticks, "error", err)
			return m.Result(), fmt.Errorf("match %s: %w", m.ID, err)
		}
		m.Step(m.config.TickInterval)
	}

	res := m.Result()
	m.logger.Info("match finished",
		"ticks", res.Ticks,
		"alive", res.Alive,
		"winner", res.WinnerID,
		"draw", res.Draw,
		"bombs", res.Stats.BombsPlaced,
		"crates", res.Stats.CratesDestroyed,
	)
	return res, nil
}

// Result snapshots the current outcome.
func (m *Match) Result() Result {
	res := Result{
		ID:       m.ID,
		Seed:     m.config.Game.Seed,
		Ticks:    m.ticks,
		GameTime: m.sim.GameTime(),
		Over:     m.sim.GameOver(),
		Alive:    m.sim.AliveCount(),
		WinnerID: -1,
		Stats:    m.stats,
		Final:    m.sim.RenderString(),
	}
	if w, ok := m.sim.Winner(); ok {
		res.WinnerID = w.ID
	}
	res.Draw = res.Over && res.Alive == 0
	return res
}
