package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  BoardWidth,
			Height: BoardHeight,
		},
		Speed: SpeedConfig{
			InitialDelayMS: 100,
			StepMS:         10,
			IntervalSec:    15,
			MinDelayMS:     20,
		},
		Snake: BodyConfig{
			InitialLength: 5,
		},
		Glyphs: GlyphConfig{
			Border: ".",
			Food:   "@",
			Body:   "#",
			Empty:  " ",
		},
		Session: SessionConfig{
			GameOverHoldSec: 5,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
	}
}
