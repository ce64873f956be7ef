package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/config"
)

// newLogger builds the run logger. Flags override the config file.
// A path of "-" logs to stderr and an empty path discards logs; anything else
// is appended to, since the game owns the terminal while it runs.
func newLogger(cfg config.LogConfig, fileFlag, levelFlag string) (*log.Logger, func(), error) {
	path := cfg.File
	if fileFlag != "" {
		path = fileFlag
	}
	levelName := cfg.Level
	if levelFlag != "" {
		levelName = levelFlag
	}

	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	var w io.Writer
	closer := func() {}
	switch path {
	case "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}
