// Package classic drives the snake game with a plain synchronous loop:
// render, poll one key, step, sleep, ramp. It talks to the terminal through
// the Terminal interface so the loop can be tested without one.
package classic

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

// ErrInterrupted is returned when the player presses ctrl+c.
var ErrInterrupted = errors.New("interrupted")

// KeyCode identifies a key independent of the terminal library.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyInterrupt
)

// Key is one key press.
type Key struct {
	Code KeyCode
	Rune rune // Set for KeyRune
}

// Action maps a key to a game action: arrows and WASD steer, q quits.
func (k Key) Action() core.Action {
	switch k.Code {
	case KeyUp:
		return core.ActionUp
	case KeyDown:
		return core.ActionDown
	case KeyLeft:
		return core.ActionLeft
	case KeyRight:
		return core.ActionRight
	case KeyRune:
		switch k.Rune {
		case 'w':
			return core.ActionUp
		case 's':
			return core.ActionDown
		case 'a':
			return core.ActionLeft
		case 'd':
			return core.ActionRight
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Terminal is the display and keyboard the loop runs on.
type Terminal interface {
	// PollKey returns the most recent pending key without blocking.
	PollKey() (Key, bool)
	// WaitKey blocks until a key arrives or ctx is done.
	WaitKey(ctx context.Context) (Key, error)
	DrawCell(x, y int, r rune, c core.Color)
	Present()
}

// Clock is the time source of the loop.
type Clock interface {
	Now() time.Time
	// Sleep pauses for d, returning early with ctx.Err() if ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

// Run plays the game until it ends. Each iteration renders the board, reads
// at most one key, steps, sleeps the current delay and then applies the speed
// ramp. Run returns nil when the game is over, ErrInterrupted on ctrl+c, or
// the context error.
func Run(ctx context.Context, game *snake.Game, term Terminal, clock Clock, logger *log.Logger) error {
	grid := game.Grid()
	screen := core.NewScreen(grid.Width(), grid.Height())

	for {
		screen.Clear()
		game.Draw(screen, 0, 0)
		flush(term, screen)

		if k, ok := term.PollKey(); ok {
			if k.Code == KeyInterrupt {
				logger.Info("interrupted", "score", game.Score())
				return ErrInterrupted
			}
			apply(game, k.Action(), logger)
		}

		if outcome := game.Step(); outcome == snake.Grew {
			logger.Debug("food eaten", "score", game.Score(), "length", game.Length())
		}

		if err := clock.Sleep(ctx, game.Delay()); err != nil {
			return err
		}

		if game.MaybeIncreaseSpeed(clock.Now()) {
			logger.Info("speed increased", "delay", game.Delay(), "level", game.SpeedLevel())
		}

		if game.Status() != snake.Playing {
			logger.Info("game over", game.Snapshot().LogValues()...)
			return nil
		}
	}
}

func apply(game *snake.Game, a core.Action, logger *log.Logger) {
	if a == core.ActionQuit {
		game.Quit()
		logger.Info("player quit", "score", game.Score())
		return
	}
	if d, ok := snake.DirectionFor(a); ok {
		game.SetDirection(d)
	}
}

// flush copies a screen buffer to the terminal and shows it.
func flush(term Terminal, s *core.Screen) {
	for y, rows := 0, s.Height(); y < rows; y++ {
		for x, cols := 0, s.Width(); x < cols; x++ {
			c := s.GetCell(x, y)
			term.DrawCell(x, y, c.Rune, c.Color)
		}
	}
	term.Present()
}

// realClock is the wall clock.
type realClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
