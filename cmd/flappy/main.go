// flappy is a side-scrolling flap-and-dodge game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play in the terminal
//	flappy simulate          - Run a headless game with an autopilot
//	flappy config            - Print the effective configuration (--defaults: built-in file)
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search ~/.flappy, ./configs)
//	--seed <value>  - RNG seed for reproducible obstacles
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flap through the gaps in your terminal",
	Long: `Flappy is a terminal side-scroller: flap to stay airborne and fly
through the gaps between the pillars. Every pillar passed scores a point.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run a headless game with a simple autopilot
  config    - Print the effective configuration

Examples:
  flappy
  flappy play --sound off
  flappy simulate --frames 5000 --seed 7
  flappy config --defaults > ~/.flappy/config.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the application logger writing to w. Every line carries
// a run id so interleaved runs in one log file can be told apart.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	}).With("run", uuid.NewString())
}

// loadConfig loads the configuration named by --config.
func loadConfig() (config.FlappyConfig, string, error) {
	return config.Load(flagConfig)
}
