package game

import "time"

// PlaceBomb places a bomb at the player's current cell. It fails without
// changing state when the player is at the bomb limit or the cell already
// holds a bomb.
func (s *Simulation) PlaceBomb(p *Player) bool {
	if p == nil || !p.Alive {
		return false
	}
	if p.ActiveBombs >= p.MaxBombs {
		return false
	}

	c := p.Cell()
	if _, exists := s.BombAt(c.X, c.Y); exists {
		return false
	}

	s.AddBomb(c.X, c.Y, p)
	return true
}

// AddBomb arms a bomb at (x, y) for owner without checking limits.
func (s *Simulation) AddBomb(x, y int, owner *Player) *Bomb {
	b := &Bomb{
		X:       x,
		Y:       y,
		OwnerID: owner.ID,
		Timer:   s.Config.BombFuse,
		Power:   owner.BombPower,
	}
	s.bombs = append(s.bombs, b)
	s.board.Set(x, y, BombTile)
	owner.ActiveBombs++
	return b
}

// RemoveBomb disarms a bomb, returning it to its owner's allowance and
// clearing its tile. It reports false if the bomb is not live.
func (s *Simulation) RemoveBomb(b *Bomb) bool {
	idx := -1
	for i, other := range s.bombs {
		if other == b {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	s.bombs = append(s.bombs[:idx], s.bombs[idx+1:]...)
	if s.board.At(b.X, b.Y) == BombTile {
		s.board.Set(b.X, b.Y, Empty)
	}
	if owner, ok := s.Player(b.OwnerID); ok {
		owner.ActiveBombs--
	}
	return true
}

// AddExplosion lights (x, y) for the configured explosion duration.
func (s *Simulation) AddExplosion(x, y int) *Explosion {
	e := &Explosion{X: x, Y: y, Timer: s.Config.ExplosionDuration}
	s.explosions = append(s.explosions, e)
	return e
}

// AddPowerup drops a powerup of type t at (x, y).
func (s *Simulation) AddPowerup(x, y int, t PowerupType) *Powerup {
	p := &Powerup{X: x, Y: y, Type: t}
	s.powerups = append(s.powerups, p)
	return p
}

// RemovePowerup takes a powerup off the board.
func (s *Simulation) RemovePowerup(p *Powerup) {
	for i, other := range s.powerups {
		if other == p {
			s.powerups = append(s.powerups[:i], s.powerups[i+1:]...)
			return
		}
	}
}

// tickBombs burns every fuse by dt and detonates the expired bombs in
// placement order. Bombs forced to zero by a blast during this pass that
// were not already expired detonate on the next tick.
func (s *Simulation) tickBombs(dt time.Duration) {
	var expired []*Bomb
	for _, b := range s.bombs {
		b.Timer -= dt
		if b.Timer <= 0 {
			expired = append(expired, b)
		}
	}
	for _, b := range expired {
		s.ExplodeBomb(b)
	}
}

// ExplodeBomb detonates a live bomb: it is removed, its cell burns, and the
// blast walks outward up to Power cells in each direction. Walls and the
// board edge stop the blast before the cell; a crate is burnt, cleared and
// may drop a powerup, then stops the blast after the cell. Other bombs in
// the blast get their fuse set to zero without stopping it. Detonating a
// bomb that is no longer live is a no-op.
func (s *Simulation) ExplodeBomb(b *Bomb) {
	if !s.RemoveBomb(b) {
		return
	}

	s.AddExplosion(b.X, b.Y)

	dirs := []Position{
		{X: 1, Y: 0},  // Right
		{X: -1, Y: 0}, // Left
		{X: 0, Y: 1},  // Down
		{X: 0, Y: -1}, // Up
	}

	for _, d := range dirs {
		for dist := 1; dist <= b.Power; dist++ {
			x := b.X + d.X*dist
			y := b.Y + d.Y*dist

			if !s.board.InBounds(x, y) {
				break
			}
			tile := s.board.At(x, y)
			if tile == Wall {
				break
			}

			s.AddExplosion(x, y)
			if pu, ok := s.PowerupAt(x, y); ok {
				s.RemovePowerup(pu)
			}

			if tile == Crate {
				s.board.Set(x, y, Empty)
				s.maybeDropPowerup(x, y)
				break
			}

			// Chain reaction: the other bomb goes off this tick or the next.
			if other, ok := s.BombAt(x, y); ok {
				other.Timer = 0
			}
		}
	}
}

// maybeDropPowerup rolls the drop chance and, on success, a uniform type.
func (s *Simulation) maybeDropPowerup(x, y int) {
	if s.rng.Next() >= s.Config.PowerupChance {
		return
	}
	t := PowerupTypes[s.rng.Intn(len(PowerupTypes))]
	s.AddPowerup(x, y, t)
}

// tickExplosions removes explosions whose timers have elapsed.
func (s *Simulation) tickExplosions(dt time.Duration) {
	remaining := s.explosions[:0]
	for _, e := range s.explosions {
		e.Timer -= dt
		if e.Timer > 0 {
			remaining = append(remaining, e)
		}
	}
	for i := len(remaining); i < len(s.explosions); i++ {
		s.explosions[i] = nil
	}
	s.explosions = remaining
}
