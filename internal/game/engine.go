package game

import (
	"time"

	"github.com/amalg/bomberman-sim/internal/rng"
)

// Simulation owns the board and every entity collection. It is driven by
// an external tick source and is not safe for concurrent use; adapters and
// AI controllers read it and change it only through its mutators.
type Simulation struct {
	Config GameConfig

	rng        *rng.Source
	board      *Board
	players    []*Player
	bombs      []*Bomb
	explosions []*Explosion
	powerups   []*Powerup
	gameTime   time.Duration
}

// NewClassicSimulation creates a simulation of the given size with every
// other parameter taken from DefaultConfig.
func NewClassicSimulation(width, height int, seed int64) *Simulation {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.Seed = seed
	return NewSimulation(config)
}

// NewSimulation creates a simulation and generates its board from config.Seed.
// Non-positive BombFuse, ExplosionDuration and MaxPlayers fall back to
// DefaultConfig. CrateDensity and PowerupChance are used as given, so zero
// means no crates and no drops.
func NewSimulation(config GameConfig) *Simulation {
	def := DefaultConfig()
	if config.BombFuse <= 0 {
		config.BombFuse = def.BombFuse
	}
	if config.ExplosionDuration <= 0 {
		config.ExplosionDuration = def.ExplosionDuration
	}
	if config.MaxPlayers <= 0 {
		config.MaxPlayers = def.MaxPlayers
	}

	s := &Simulation{
		Config: config,
		rng:    rng.FromInt64(config.Seed),
	}
	s.Reset()
	return s
}

// Reset regenerates the board from the continuing RNG stream and clears
// players, bombs, explosions, powerups and the clock.
func (s *Simulation) Reset() {
	s.board = GenerateBoard(s.Config.Width, s.Config.Height, s.rng, s.Config.CrateDensity)
	s.players = nil
	s.bombs = nil
	s.explosions = nil
	s.powerups = nil
	s.gameTime = 0
}

// Board returns the live board.
func (s *Simulation) Board() *Board { return s.board }

// Width returns the board width.
func (s *Simulation) Width() int { return s.board.Width }

// Height returns the board height.
func (s *Simulation) Height() int { return s.board.Height }

// Players returns players in creation order.
func (s *Simulation) Players() []*Player { return s.players }

// Bombs returns live bombs in placement order.
func (s *Simulation) Bombs() []*Bomb { return s.bombs }

// Explosions returns burning cells in creation order.
func (s *Simulation) Explosions() []*Explosion { return s.explosions }

// Powerups returns powerups lying on the board.
func (s *Simulation) Powerups() []*Powerup { return s.powerups }

// GameTime returns the accumulated simulation clock.
func (s *Simulation) GameTime() time.Duration { return s.gameTime }

// CreatePlayer appends a player with default stats. Ids are not checked for
// uniqueness; callers must not reuse an id, since owner lookups resolve to
// the first player carrying it.
func (s *Simulation) CreatePlayer(id, x, y int, isHuman bool) *Player {
	p := &Player{
		ID:        id,
		X:         float64(x),
		Y:         float64(y),
		IsHuman:   isHuman,
		Alive:     true,
		Speed:     1,
		BombPower: 1,
		MaxBombs:  1,
	}
	s.players = append(s.players, p)
	return p
}

// Player returns the first player with the given id.
func (s *Simulation) Player(id int) (*Player, bool) {
	for _, p := range s.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// PlayerAt returns the living player occupying (x, y).
func (s *Simulation) PlayerAt(x, y int) (*Player, bool) {
	for _, p := range s.players {
		if !p.Alive {
			continue
		}
		if c := p.Cell(); c.X == x && c.Y == y {
			return p, true
		}
	}
	return nil, false
}

// BombAt returns the bomb at (x, y).
func (s *Simulation) BombAt(x, y int) (*Bomb, bool) {
	for _, b := range s.bombs {
		if b.X == x && b.Y == y {
			return b, true
		}
	}
	return nil, false
}

// PowerupAt returns the powerup at (x, y).
func (s *Simulation) PowerupAt(x, y int) (*Powerup, bool) {
	for _, p := range s.powerups {
		if p.X == x && p.Y == y {
			return p, true
		}
	}
	return nil, false
}

// ExplosionAt reports whether any explosion is burning at (x, y).
func (s *Simulation) ExplosionAt(x, y int) bool {
	for _, e := range s.explosions {
		if e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

// Apply executes an adapter-supplied action for its player.
// It reports whether the simulation changed.
func (s *Simulation) Apply(a Action) bool {
	p, ok := s.Player(a.PlayerID)
	if !ok {
		return false
	}
	switch a.Type {
	case ActionMove:
		dx, dy := a.Dir.Delta()
		return s.MovePlayer(p, dx, dy)
	case ActionPlaceBomb:
		return s.PlaceBomb(p)
	}
	return false
}

// Update advances the simulation by dt: clock, bomb fuses and detonations,
// explosion lifetimes, then collisions for every player in creation order.
func (s *Simulation) Update(dt time.Duration) {
	s.gameTime += dt
	s.tickBombs(dt)
	s.tickExplosions(dt)
	for _, p := range s.players {
		s.CheckCollisions(p)
	}
}

// AliveCount returns the number of living players.
func (s *Simulation) AliveCount() int {
	n := 0
	for _, p := range s.players {
		if p.Alive {
			n++
		}
	}
	return n
}

// GameOver reports whether at most one player is left standing.
func (s *Simulation) GameOver() bool {
	return len(s.players) > 0 && s.AliveCount() <= 1
}

// Winner returns the sole survivor once the game is over. A game that ends
// with nobody alive is a draw and has no winner.
func (s *Simulation) Winner() (*Player, bool) {
	if !s.GameOver() {
		return nil, false
	}
	for _, p := range s.players {
		if p.Alive {
			return p, true
		}
	}
	return nil, false
}
