// Package snake implements the game state of a single-player grid Snake.
// It has no terminal dependencies: frontends feed it directions and ticks,
// and read back the grid to draw it.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gammazero/deque"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
)

// ErrBoardTooSmall is returned by New when the board cannot hold a snake and food.
var ErrBoardTooSmall = errors.New("snake: board too small")

// Outcome is what a single Step did.
type Outcome int

const (
	Moved     Outcome = iota // Advanced into an empty cell, tail aged
	Grew                     // Ate food, new food planted
	Collided                 // Hit the border or the body; game over
	BoardFull                // Ate the last food with no room to plant another
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Grew:
		return "grew"
	case Collided:
		return "collided"
	case BoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a game.
type Status int

const (
	Playing Status = iota
	Over           // Collision or player quit
	Won            // Board filled up
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Over:
		return "over"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Game owns the whole simulation state.
type Game struct {
	grid   *Grid
	body   *deque.Deque[int] // Body cell indices, head at the front
	head   int
	dir    Direction
	score  int
	status Status
	last   Outcome
	tick   uint64
	rng    *rand.Rand
	ramp   *SpeedRamp
	glyphs Glyphs
}

// New creates a game and performs the start sequence: border ring, head near
// the middle facing north, one food item, and the speed ramp's start time.
func New(cfg config.SnakeConfig, rc core.RuntimeConfig) (*Game, error) {
	w, h := cfg.Board.Width, cfg.Board.Height
	if w < 4 || h < 4 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, w, h)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid config: %w", err)
	}

	g := &Game{
		grid:   NewGrid(w, h),
		body:   deque.New[int](cfg.Snake.InitialLength + 1),
		dir:    North,
		status: Playing,
		rng:    rand.New(rand.NewSource(rc.ResolveSeed())),
		ramp:   NewSpeedRamp(cfg.Speed, rc.Clock()()),
		glyphs: GlyphsFrom(cfg.Glyphs),
	}

	// Horizontal center of a row just above mid-height
	g.head = w * (h - 1 - h%2) / 2
	g.grid.Set(g.head, Cell(-cfg.Snake.InitialLength))
	g.body.PushFront(g.head)

	if err := g.Plant(); err != nil {
		return nil, fmt.Errorf("snake: cannot place first food: %w", err)
	}

	return g, nil
}

// SetDirection changes the heading unless d is the exact reverse of the current one.
// Returns false when the change was rejected.
func (g *Game) SetDirection(d Direction) bool {
	if d == g.dir.Opposite() {
		return false
	}
	g.dir = d
	return true
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.dir
}

// Step advances the snake one cell. Exactly one of grow, move-and-age or
// terminate happens. After the game has ended Step does nothing and returns
// the final outcome.
func (g *Game) Step() Outcome {
	if g.status != Playing {
		return g.last
	}
	g.tick++

	length := g.grid.At(g.head)
	next := g.head + g.dir.Delta(g.grid.Width())

	switch g.grid.At(next) {
	case Food:
		g.advance(next, length-1)
		g.score++
		if err := g.Plant(); errors.Is(err, ErrBoardFull) {
			g.status = Won
			g.last = BoardFull
			return g.last
		}
		g.last = Grew
	case Empty:
		g.advance(next, length-1)
		g.age()
		g.last = Moved
	default:
		g.status = Over
		g.last = Collided
	}

	return g.last
}

// advance writes the new head value and moves the head there.
func (g *Game) advance(next int, value Cell) {
	g.grid.Set(next, value)
	g.body.PushFront(next)
	g.head = next
}

// age moves every body segment one tick closer to zero.
// A segment that reaches zero is Empty again and leaves the body.
func (g *Game) age() {
	for i, n := 0, g.body.Len(); i < n; i++ {
		idx := g.body.At(i)
		g.grid.Set(idx, g.grid.At(idx)+1)
	}
	for g.body.Len() > 0 && g.grid.At(g.body.Back()) == Empty {
		g.body.PopBack()
	}
}

// Quit ends the game at the player's request.
func (g *Game) Quit() {
	if g.status == Playing {
		g.status = Over
	}
}

// MaybeIncreaseSpeed applies the speed ramp for the given wall-clock time.
// Returns true if the tick delay went down.
func (g *Game) MaybeIncreaseSpeed(now time.Time) bool {
	return g.ramp.MaybeIncrease(now)
}

// Delay returns the current tick delay.
func (g *Game) Delay() time.Duration {
	return g.ramp.Delay()
}

// SpeedLevel returns how many times the ramp has shortened the delay.
func (g *Game) SpeedLevel() int {
	return g.ramp.Level()
}

// Grid exposes the board for rendering. Callers must not modify it.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Head returns the index of the head cell.
func (g *Game) Head() int {
	return g.head
}

// Length returns the number of cells the snake occupies.
func (g *Game) Length() int {
	return g.body.Len()
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// State returns the status in the form frontends share.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status != Playing,
		Won:      g.status == Won,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	row, col := g.grid.RowCol(g.head)
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", g.tick, g.score, g.status)
	fmt.Fprintf(&b, "Head: (%d, %d) = %d, Length: %d, Direction: %s\n", row, col, g.grid.At(g.head), g.body.Len(), g.dir)
	fmt.Fprintf(&b, "Delay: %s, Empty cells: %d\n", g.ramp.Delay(), g.grid.EmptyCount())
	return b.String()
}
