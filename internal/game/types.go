package game

import (
	"fmt"
	"math"
	"time"
)

// TileType represents the type of a cell on the game board.
type TileType int

const (
	Empty    TileType = iota
	Wall              // Indestructible
	Crate             // Destructible by bombs
	BombTile          // Occupied by a live bomb
)

// String returns the text-render symbol for the tile.
func (t TileType) String() string {
	switch t {
	case Wall:
		return "#"
	case Crate:
		return "%"
	case BombTile:
		return "*"
	default:
		return "."
	}
}

// PowerupType is the effect a powerup grants when picked up.
type PowerupType int

const (
	PowerupBomb  PowerupType = iota // +1 max bombs
	PowerupPower                    // +1 blast radius
	PowerupSpeed                    // +0.5 speed
)

// PowerupTypes lists every powerup type in drop-table order.
var PowerupTypes = []PowerupType{PowerupBomb, PowerupPower, PowerupSpeed}

func (t PowerupType) String() string {
	switch t {
	case PowerupBomb:
		return "bomb"
	case PowerupPower:
		return "power"
	case PowerupSpeed:
		return "speed"
	}
	return fmt.Sprintf("PowerupType(%d)", int(t))
}

// Symbol is the uppercased first letter of the type name.
func (t PowerupType) Symbol() byte {
	switch t {
	case PowerupBomb:
		return 'B'
	case PowerupPower:
		return 'P'
	case PowerupSpeed:
		return 'S'
	}
	return '?'
}

// Direction represents a movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// ActionType represents the type of player action.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionPlaceBomb
)

// Action represents a player's input action.
type Action struct {
	PlayerID int
	Type     ActionType
	Dir      Direction // Only relevant for ActionMove
}

// Position represents a coordinate on the board.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan returns the grid distance between two positions.
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Player is a participant in the simulation. Players are never removed,
// only marked not alive.
type Player struct {
	ID          int           `json:"id"`
	X           float64       `json:"x"` // Grid coordinates; fractional values are floored for cell lookups
	Y           float64       `json:"y"`
	IsHuman     bool          `json:"is_human"`
	Alive       bool          `json:"alive"`
	Speed       float64       `json:"speed"`        // Movement-cooldown divisor
	BombPower   int           `json:"bomb_power"`   // Explosion radius in tiles
	MaxBombs    int           `json:"max_bombs"`    // Max simultaneous bombs
	ActiveBombs int           `json:"active_bombs"` // Currently live bombs
	Powerups    []PowerupType `json:"powerups"`     // Pickup history, uncapped
}

// Cell returns the integer cell the player occupies.
func (p *Player) Cell() Position {
	return Position{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Bomb is an armed bomb. OwnerID refers back to the placing player by id.
type Bomb struct {
	X       int           `json:"x"`
	Y       int           `json:"y"`
	OwnerID int           `json:"owner_id"`
	Timer   time.Duration `json:"timer"`
	Power   int           `json:"power"` // Owner's BombPower at placement
}

// Pos returns the bomb's cell.
func (b *Bomb) Pos() Position {
	return Position{X: b.X, Y: b.Y}
}

// Explosion is a single burning cell. Several may share a cell.
type Explosion struct {
	X     int           `json:"x"`
	Y     int           `json:"y"`
	Timer time.Duration `json:"timer"`
}

// Powerup is a pickup lying on an open cell.
type Powerup struct {
	X    int         `json:"x"`
	Y    int         `json:"y"`
	Type PowerupType `json:"type"`
}

// Stat caps applied by powerups.
const (
	MaxBombsCap  = 8
	BombPowerCap = 8
	SpeedCap     = 3.0
	SpeedStep    = 0.5
)

// GameConfig holds configurable parameters for a simulation.
type GameConfig struct {
	Width             int           `json:"width"`
	Height            int           `json:"height"`
	Seed              int64         `json:"seed"`
	BombFuse          time.Duration `json:"bomb_fuse"`
	ExplosionDuration time.Duration `json:"explosion_duration"`
	CrateDensity      float64       `json:"crate_density"`  // 0.0 to 1.0
	PowerupChance     float64       `json:"powerup_chance"` // 0.0 to 1.0
	MaxPlayers        int           `json:"max_players"`
}

// DefaultConfig returns the classic configuration seeded from the wall clock.
func DefaultConfig() GameConfig {
	return GameConfig{
		Width:             15,
		Height:            13,
		Seed:              time.Now().UnixNano(),
		BombFuse:          3 * time.Second,
		ExplosionDuration: 500 * time.Millisecond,
		CrateDensity:      0.7,
		PowerupChance:     0.3,
		MaxPlayers:        4,
	}
}

// MinBoardSize is the smallest side length that fits the spawn-corner pattern.
const MinBoardSize = 5

// Validate reports configuration values the simulation cannot work with.
func (c GameConfig) Validate() error {
	if c.Width < MinBoardSize || c.Height < MinBoardSize {
		return fmt.Errorf("board %dx%d is smaller than %dx%d", c.Width, c.Height, MinBoardSize, MinBoardSize)
	}
	if c.CrateDensity < 0 || c.CrateDensity > 1 {
		return fmt.Errorf("crate density %v outside [0,1]", c.CrateDensity)
	}
	if c.PowerupChance < 0 || c.PowerupChance > 1 {
		return fmt.Errorf("powerup chance %v outside [0,1]", c.PowerupChance)
	}
	if c.BombFuse <= 0 || c.ExplosionDuration <= 0 {
		return fmt.Errorf("bomb fuse and explosion duration must be positive")
	}
	return nil
}

// SpawnPositions returns the corner spawn positions for players.
// These corners and their orthogonal neighbours are kept clear of crates.
func SpawnPositions(width, height int) []Position {
	return []Position{
		{X: 1, Y: 1},                  // Top-left
		{X: width - 2, Y: 1},          // Top-right
		{X: 1, Y: height - 2},         // Bottom-left
		{X: width - 2, Y: height - 2}, // Bottom-right
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
