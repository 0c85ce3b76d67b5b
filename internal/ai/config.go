package ai

import "time"

// Config tunes the controller's reflexes.
type Config struct {
	// EscapeThreshold is the danger level below which the agent drops
	// everything and runs.
	EscapeThreshold time.Duration

	// MinBombInterval is the minimum game time between self-placed bombs.
	MinBombInterval time.Duration

	// StuckThreshold is how long the agent may stay on one cell before its
	// plan is discarded.
	StuckThreshold time.Duration

	// BaseMoveCooldown is divided by the player's speed after every move.
	BaseMoveCooldown time.Duration

	// MaxEscapeSteps bounds the path to safety required before bombing.
	MaxEscapeSteps int

	// Seed drives random exploration.
	Seed int64
}

// DefaultConfig returns the standard agent tuning.
func DefaultConfig() Config {
	return Config{
		EscapeThreshold:  1500 * time.Millisecond,
		MinBombInterval:  1000 * time.Millisecond,
		StuckThreshold:   2000 * time.Millisecond,
		BaseMoveCooldown: 200 * time.Millisecond,
		MaxEscapeSteps:   4,
	}
}
