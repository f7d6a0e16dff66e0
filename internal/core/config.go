package core

import "time"

// RuntimeConfig contains the per-process settings handed to a frontend.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters (unused by the window frontend)
	ScreenH      int           // Terminal height in characters
	TickInterval time.Duration // Fixed simulation tick length
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 16 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns the seed, substituting a time-based one for zero.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hits  int // Bullet/debris intersections scored this tick
}
