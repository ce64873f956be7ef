package core

import "time"

// RuntimeConfig contains configuration passed to a game at start.
// Frontends fill it from the terminal and the command line.
type RuntimeConfig struct {
	ScreenW int              // Screen width in characters
	ScreenH int              // Screen height in characters
	Seed    int64            // RNG seed; 0 means use current time
	Now     func() time.Time // Wall clock for the speed ramp; nil means time.Now
}

// DefaultConfig returns a RuntimeConfig sized for the 80x40 board plus HUD.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 43,
		Seed:    0,
		Now:     time.Now,
	}
}

// Clock returns the configured wall clock, defaulting to time.Now.
func (c RuntimeConfig) Clock() func() time.Time {
	if c.Now == nil {
		return time.Now
	}
	return c.Now
}

// ResolveSeed returns the seed, replacing 0 with a time-based value.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}

// GameState is the status a frontend needs after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether it ended because the board filled up
}
