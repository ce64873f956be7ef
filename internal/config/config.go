// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Fixed board dimensions. The grid size is not user-configurable.
const (
	BoardWidth  = 80
	BoardHeight = 40
)

// SnakeConfig contains all configuration for the game and its frontends.
type SnakeConfig struct {
	// Board is fixed in code; tests shrink it, YAML never sees it.
	Board   BoardConfig   `yaml:"-"`
	Speed   SpeedConfig   `yaml:"speed"`
	Snake   BodyConfig    `yaml:"snake"`
	Glyphs  GlyphConfig   `yaml:"glyphs"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig holds grid dimensions in cells, border ring included.
type BoardConfig struct {
	Width  int
	Height int
}

// SpeedConfig defines the speed ramp.
type SpeedConfig struct {
	InitialDelayMS int `yaml:"initial_delay_ms"`
	StepMS         int `yaml:"step_ms"`
	IntervalSec    int `yaml:"interval_sec"`
	MinDelayMS     int `yaml:"min_delay_ms"`
}

// InitialDelay returns the starting tick delay.
func (s SpeedConfig) InitialDelay() time.Duration {
	return time.Duration(s.InitialDelayMS) * time.Millisecond
}

// Step returns how much the delay shrinks per ramp.
func (s SpeedConfig) Step() time.Duration {
	return time.Duration(s.StepMS) * time.Millisecond
}

// Interval returns the real time between ramps.
func (s SpeedConfig) Interval() time.Duration {
	return time.Duration(s.IntervalSec) * time.Second
}

// MinDelay returns the floor for the tick delay.
func (s SpeedConfig) MinDelay() time.Duration {
	return time.Duration(s.MinDelayMS) * time.Millisecond
}

// BodyConfig defines the snake's starting body.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// GlyphConfig maps cell kinds to display characters.
// Each value must be exactly one rune.
type GlyphConfig struct {
	Border string `yaml:"border"`
	Food   string `yaml:"food"`
	Body   string `yaml:"body"`
	Empty  string `yaml:"empty"`
}

// SessionConfig controls the screens around a game.
type SessionConfig struct {
	GameOverHoldSec int `yaml:"game_over_hold_sec"`
}

// GameOverHold returns how long the final score stays on screen.
func (s SessionConfig) GameOverHold() time.Duration {
	return time.Duration(s.GameOverHoldSec) * time.Second
}

// LogConfig controls the log destination.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // "-" means stderr, "" discards
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width < 4 || c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board: %dx%d is below the 4x4 minimum", c.Board.Width, c.Board.Height))
	}
	if c.Speed.InitialDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("speed.initial_delay_ms: must be positive, got %d", c.Speed.InitialDelayMS))
	}
	if c.Speed.StepMS < 0 {
		errs = append(errs, fmt.Errorf("speed.step_ms: must not be negative, got %d", c.Speed.StepMS))
	}
	if c.Speed.IntervalSec <= 0 {
		errs = append(errs, fmt.Errorf("speed.interval_sec: must be positive, got %d", c.Speed.IntervalSec))
	}
	if c.Speed.MinDelayMS <= 0 || c.Speed.MinDelayMS > c.Speed.InitialDelayMS {
		errs = append(errs, fmt.Errorf("speed.min_delay_ms: must be in (0, %d], got %d", c.Speed.InitialDelayMS, c.Speed.MinDelayMS))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("snake.initial_length: must be at least 1, got %d", c.Snake.InitialLength))
	}
	if c.Session.GameOverHoldSec < 0 {
		errs = append(errs, fmt.Errorf("session.game_over_hold_sec: must not be negative, got %d", c.Session.GameOverHoldSec))
	}

	glyphs := map[string]string{
		"glyphs.border": c.Glyphs.Border,
		"glyphs.food":   c.Glyphs.Food,
		"glyphs.body":   c.Glyphs.Body,
		"glyphs.empty":  c.Glyphs.Empty,
	}
	for _, name := range []string{"glyphs.border", "glyphs.food", "glyphs.body", "glyphs.empty"} {
		if n := utf8.RuneCountInString(glyphs[name]); n != 1 {
			errs = append(errs, fmt.Errorf("%s: must be a single character, got %q", name, glyphs[name]))
		}
	}

	return errors.Join(errs...)
}

// Rune returns the first rune of a glyph string, or fallback if empty.
func Rune(glyph string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(glyph)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
