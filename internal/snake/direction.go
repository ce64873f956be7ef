package snake

import "github.com/vovakirdan/term-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the index offset of one step in a row-major grid of the given width.
func (d Direction) Delta(width int) int {
	switch d {
	case North:
		return -width
	case South:
		return width
	case West:
		return -1
	case East:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// DirectionFor maps a steering action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return North, true
	case core.ActionRight:
		return East, true
	case core.ActionDown:
		return South, true
	case core.ActionLeft:
		return West, true
	default:
		return North, false
	}
}
