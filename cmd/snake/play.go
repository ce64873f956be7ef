package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/platform/classic"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
	"github.com/vovakirdan/term-snake/internal/snake"
)

var (
	flagClassic bool
	flagID      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game. You are asked for your 8-digit student ID first
unless --id is given.

Controls:
  Arrows/WASD  - Steer
  Q            - End the game
  Ctrl+C       - Exit immediately

Examples:
  snake play
  snake play --id 20231234
  snake play --classic`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagClassic, "classic", false, "Use the plain synchronous frontend")
	cmd.Flags().StringVar(&flagID, "id", "", "Student ID (8 digits), skips the prompt")
}

func init() {
	addPlayFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagID != "" {
		if err := core.ValidateID(flagID); err != nil {
			return fmt.Errorf("--id: %w", err)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("snake needs an interactive terminal")
	}

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Now:     time.Now,
	}
	rc.Seed = rc.ResolveSeed()

	logger = logger.With("run", uuid.NewString())
	logger.Info("starting", "seed", rc.Seed, "classic", flagClassic, "terminal", fmt.Sprintf("%dx%d", width, height))
	if width < cfg.Board.Width || height < cfg.Board.Height {
		logger.Warn("terminal smaller than the board", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagClassic {
		err = playClassic(ctx, cfg, rc, logger)
	} else {
		err = playTUI(cfg, rc, logger)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func playTUI(cfg config.SnakeConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	id := flagID
	if id == "" {
		var err error
		id, err = tui.RunPrompt(rc)
		if errors.Is(err, tui.ErrAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
	}

	// The game starts after the prompt so the speed ramp does not count typing time
	game, err := snake.New(cfg, rc)
	if err != nil {
		return err
	}

	logger = logger.With("student", id)
	logger.Info("game started")
	err = tui.Run(game, tui.Options{
		StudentID: id,
		Hold:      cfg.Session.GameOverHold(),
		Clock:     rc.Now,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}
	logger.Info("game ended", "score", game.Score())
	return nil
}

func playClassic(ctx context.Context, cfg config.SnakeConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	scr, err := classic.NewScreen()
	if err != nil {
		return err
	}
	defer scr.Close()

	id := flagID
	if id == "" {
		id, err = classic.PromptID(ctx, scr, rc.ScreenW, rc.ScreenH)
		if errors.Is(err, classic.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	game, err := snake.New(cfg, rc)
	if err != nil {
		return err
	}

	logger = logger.With("student", id)
	logger.Info("game started")
	err = classic.Play(ctx, game, scr, classic.SystemClock(), classic.Options{
		Hold:   cfg.Session.GameOverHold(),
		Logger: logger,
	})
	logger.Info("game ended", "score", game.Score())
	return err
}
