package game

// IsWalkable reports whether (x, y) is inside the board and Empty.
// Walls, crates and bomb tiles block; powerups do not occupy the tile.
func (s *Simulation) IsWalkable(x, y int) bool {
	return s.board.InBounds(x, y) && s.board.At(x, y) == Empty
}

// MovePlayer attempts to move a player by (dx, dy) cells.
// The target must be walkable, except that the player may stay on the bomb
// already under them. Stepping onto any bomb from another cell is refused,
// including stepping back onto their own.
func (s *Simulation) MovePlayer(p *Player, dx, dy int) bool {
	if p == nil || !p.Alive {
		return false
	}

	cur := p.Cell()
	nx, ny := cur.X+dx, cur.Y+dy
	if target, ok := s.BombAt(nx, ny); ok {
		if under, standing := s.BombAt(cur.X, cur.Y); !standing || under != target {
			return false
		}
	} else if !s.IsWalkable(nx, ny) {
		return false
	}

	p.X += float64(dx)
	p.Y += float64(dy)
	return true
}

// CheckCollisions resolves what the player is standing in: an explosion
// kills, otherwise a powerup is picked up. Dead players are ignored.
func (s *Simulation) CheckCollisions(p *Player) {
	if p == nil || !p.Alive {
		return
	}

	c := p.Cell()
	if s.ExplosionAt(c.X, c.Y) {
		p.Alive = false
		return
	}

	if pu, ok := s.PowerupAt(c.X, c.Y); ok {
		s.ApplyPowerup(p, pu)
		s.RemovePowerup(pu)
	}
}

// ApplyPowerup grants the powerup's effect, capped per stat, and records
// the pickup in the player's history even when the cap was already reached.
func (s *Simulation) ApplyPowerup(p *Player, pu *Powerup) {
	switch pu.Type {
	case PowerupBomb:
		p.MaxBombs = min(p.MaxBombs+1, MaxBombsCap)
	case PowerupPower:
		p.BombPower = min(p.BombPower+1, BombPowerCap)
	case PowerupSpeed:
		p.Speed = min(p.Speed+SpeedStep, SpeedCap)
	}
	p.Powerups = append(p.Powerups, pu.Type)
}
