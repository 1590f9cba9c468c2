package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagFPS     int
	flagAssets  string
	flagSound   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W - Flap (also starts the game)
  R          - Play again after a crash
  Q/Ctrl+C   - Quit

Sound:
  bell - ring the terminal bell on every jump, point and crash
  log  - only write sounds to the log file
  off  - silence

Examples:
  flappy play
  flappy play --fps 30 --sound off
  flappy play --assets ./assets --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = config render.fps)")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with jump.wav, scoreup.wav and loose.wav")
	cmd.Flags().StringVar(&flagSound, "sound", "", "Sound output: bell, log or off (default: config audio.output)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

// applyPlayFlags overrides configuration values with the play flags.
func applyPlayFlags(cfg config.FlappyConfig) (config.FlappyConfig, error) {
	if flagFPS > 0 {
		cfg.Render.FPS = flagFPS
	}
	if flagAssets != "" {
		cfg.Audio.AssetsDir = flagAssets
	}
	if flagSound != "" {
		cfg.Audio.Output = flagSound
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg, err = applyPlayFlags(cfg); err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)
	logger.Info("config loaded", "source", source)

	bank, err := audio.LoadBank(cfg.Audio.AssetsDir)
	if err != nil {
		return err
	}

	// The bell shares the program's output so it is never written mid-frame.
	out := tui.NewOutput(os.Stdout)
	player, err := audio.New(cfg.Audio.Output, out, logger, bank)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Render.FPS
	rt.Seed = flagSeed

	opts := tui.Options{
		Game:    cfg,
		Runtime: rt,
		Player:  player,
		Logger:  logger,
		Output:  out,
	}

	if err := tui.Run(opts); err != nil {
		logger.Error("run failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
