// Package audio turns simulation events into sounds. The game never plays
// anything itself; the host hands every event to a Player.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Asset returns the sound file name for an event.
func Asset(e game.Event) string {
	switch e {
	case game.EventJump:
		return "jump.wav"
	case game.EventScore:
		return "scoreup.wav"
	case game.EventDeath:
		return "loose.wav"
	default:
		return ""
	}
}

var allEvents = []game.Event{game.EventJump, game.EventScore, game.EventDeath}

// Bank resolves event sounds to paths.
type Bank struct {
	dir string
}

// LoadBank checks that every sound exists under dir. An empty dir gives a
// bank of bare asset names with nothing to check.
func LoadBank(dir string) (Bank, error) {
	if dir == "" {
		return Bank{}, nil
	}

	var errs []error
	for _, e := range allEvents {
		path := filepath.Join(dir, Asset(e))
		info, err := os.Stat(path)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("missing %s: %w", Asset(e), err))
		case info.IsDir():
			errs = append(errs, fmt.Errorf("%s is a directory", path))
		}
	}
	if len(errs) > 0 {
		return Bank{}, fmt.Errorf("audio: load bank %s: %w", dir, errors.Join(errs...))
	}
	return Bank{dir: dir}, nil
}

// Dir returns the asset directory, empty for the built-in bank.
func (b Bank) Dir() string {
	return b.dir
}

// Path returns where the sound for e lives.
func (b Bank) Path(e game.Event) string {
	name := Asset(e)
	if b.dir == "" || name == "" {
		return name
	}
	return filepath.Join(b.dir, name)
}

// Player plays the sound for an event. Play must not block the frame loop
// and never reports failure.
type Player interface {
	Play(e game.Event)
}

// Nop discards every event.
type Nop struct{}

// Play does nothing.
func (Nop) Play(game.Event) {}

// BellPlayer rings the terminal bell for each event.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellPlayer writes BEL characters to w.
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

// Play rings the bell. Write errors are ignored.
func (p *BellPlayer) Play(game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.w, "\a")
}

// LogPlayer records each sound as a log line.
type LogPlayer struct {
	logger *log.Logger
	bank   Bank
}

// NewLogPlayer logs sounds from bank to logger.
func NewLogPlayer(logger *log.Logger, bank Bank) *LogPlayer {
	return &LogPlayer{logger: logger, bank: bank}
}

// Play logs the event and its asset.
func (p *LogPlayer) Play(e game.Event) {
	p.logger.Info("sound", "event", e, "asset", p.bank.Path(e))
}

// Multi fans every event out to all players in order.
type Multi []Player

// Play forwards e to each player.
func (m Multi) Play(e game.Event) {
	for _, p := range m {
		p.Play(e)
	}
}

// PlayAll plays each event in order.
func PlayAll(p Player, events game.Events) {
	for _, e := range events {
		p.Play(e)
	}
}

// New builds the player for an output mode: "bell", "log" or "off".
// Bell output also logs, so the log file shows what was heard.
func New(output string, w io.Writer, logger *log.Logger, bank Bank) (Player, error) {
	switch output {
	case "bell":
		return Multi{NewBellPlayer(w), NewLogPlayer(logger, bank)}, nil
	case "log":
		return NewLogPlayer(logger, bank), nil
	case "off", "":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("audio: unknown output %q", output)
	}
}
