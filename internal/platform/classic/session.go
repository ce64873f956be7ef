package classic

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

// Options configures a classic session.
type Options struct {
	Hold   time.Duration // How long the game over message stays up
	Logger *log.Logger
}

// Play runs the game loop followed by the game over screen: the final score
// is held for opts.Hold, then the player is asked to press any key.
func Play(ctx context.Context, game *snake.Game, term Terminal, clock Clock, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if err := Run(ctx, game, term, clock, logger); err != nil {
		if errors.Is(err, ErrInterrupted) {
			return nil
		}
		return err
	}

	grid := game.Grid()
	screen := core.NewScreen(grid.Width(), grid.Height())
	game.Draw(screen, 0, 0)
	screen.DrawPanel(core.GameOverLines(game.State()), core.ColorYellow)
	flush(term, screen)

	if err := clock.Sleep(ctx, opts.Hold); err != nil {
		return err
	}

	// Keys pressed during the hold do not count
	term.PollKey()

	screen.Clear()
	screen.DrawText(0, 0, core.ExitPrompt)
	flush(term, screen)

	_, err := term.WaitKey(ctx)
	return err
}
