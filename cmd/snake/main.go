// snake is a terminal Snake game.
//
// Usage:
//
//	snake                  - Ask for a student ID and play
//	snake play --id <id>   - Play without the ID prompt
//	snake play --classic   - Play with the plain synchronous frontend
//	snake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-file <path>   - Log destination, "-" for stderr (default: from config)
//	--log-level <level> - debug, info, warn or error (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A single-player Snake game on an 80x40 board.

Steer with the arrow keys (or WASD), eat the @ to grow, and avoid the
walls and your own tail. The game speeds up every 15 seconds.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  snake
  snake play --id 20231234
  snake play --classic --seed 42
  snake config > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path, "-" for stderr`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
