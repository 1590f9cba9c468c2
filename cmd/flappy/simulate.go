package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

var (
	flagFrames int
	flagDT     time.Duration
	flagWidth  int
	flagHeight int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with a simple autopilot",
	Long: `Runs the game without a terminal UI using a fixed frame delta. An
autopilot flaps whenever the player sinks below the next gap. Every event is
logged to stderr and the final score is printed to stdout.

Examples:
  flappy simulate
  flappy simulate --frames 10000 --dt 33ms --seed 42
  flappy simulate --width 1280 --height 720`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simulateCmd.Flags().DurationVar(&flagDT, "dt", 16*time.Millisecond, "Time per frame")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 640, "Viewport width in world units")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 576, "Viewport height in world units")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames < 0 || flagDT < 0 {
		return errors.New("--frames and --dt must not be negative")
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)
	logger.Info("config loaded", "source", source)

	res, err := simulate(cfg, simulation{
		Frames: flagFrames,
		DT:     flagDT,
		Width:  flagWidth,
		Height: flagHeight,
		Seed:   flagSeed,
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("simulation finished",
		"frames", humanize.Comma(int64(res.Frames)),
		"game_time", res.Final.Clock,
		"jumps", res.Jumps,
		"died", res.Died,
		"obstacles", len(res.Final.Obstacles),
		"player_y", res.Final.Player.Y,
	)
	fmt.Fprintf(cmd.OutOrStdout(), "score: %d\n", res.Score)
	return nil
}

// simulation describes one headless run.
type simulation struct {
	Frames        int
	DT            time.Duration
	Width, Height int
	Seed          int64
}

// simResult summarises a headless run.
type simResult struct {
	Frames int
	Score  int
	Jumps  int
	Died   bool
	Final  game.State // session state when the run stopped
}

// simulate plays one game with the autopilot until the player dies or the
// frame budget runs out.
func simulate(cfg config.FlappyConfig, sim simulation, logger *log.Logger) (simResult, error) {
	s := game.NewSession(cfg, game.NewRand(sim.Seed))
	var res simResult

	record := func(frame int, events game.Events) {
		for _, e := range events {
			switch e {
			case game.EventJump:
				res.Jumps++
				logger.Debug("jump", "frame", frame, "y", s.PlayerY())
			case game.EventScore:
				logger.Info("score", "frame", frame, "value", s.Score())
			case game.EventDeath:
				logger.Info("death", "frame", frame, "score", s.Score())
			}
		}
	}

	record(0, s.Jump())
	for res.Frames < sim.Frames && !s.Died() {
		res.Frames++
		if autopilot(s, sim.Height) {
			record(res.Frames, s.Jump())
		}
		record(res.Frames, s.Advance(sim.DT, sim.Width, sim.Height))
	}

	final, err := s.Snapshot()
	if err != nil {
		return res, err
	}
	res.Final = final
	res.Score = final.Score
	res.Died = !final.Player.Alive
	return res, nil
}

// autopilot decides whether to flap this frame. It flaps once the falling
// player sinks past the lower part of the next gap; one flap then carries it
// up to the upper part.
func autopilot(s *game.Session, height int) bool {
	cfg := s.Config()
	target := float64(height) / 2

	for _, o := range s.Obstacles() {
		if o.Right(cfg.ObstacleWidth()) >= cfg.Player.X-cfg.Player.HalfSize {
			target = float64(o.GapY)
			break
		}
	}

	return s.Factor() > 0 && s.PlayerY() > target+float64(cfg.Obstacles.GapHalfHeight)*0.6
}
