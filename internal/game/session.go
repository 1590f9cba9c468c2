// Package game implements the flappy simulation: a player that falls under a
// saturating velocity factor, obstacles that scroll in from the right, and
// collision and scoring driven by the real time elapsed between frames.
//
// The package is headless. A host calls Advance once per frame with the frame
// delta and the viewport size in world units, forwards key presses to Jump and
// Restart, plays the returned Events and draws the session through Renderer.
package game

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Player is the vertical state of the player sprite.
type Player struct {
	Y      float64 // Centre of the sprite
	Factor float64 // Unitless velocity factor; negative = rising
	Alive  bool
}

// State is the mutable part of a session. It is what Reset restores and what
// Snapshot copies.
type State struct {
	Player       Player
	Obstacles    []Obstacle // Creation order, which is also left-to-right order
	Score        int
	ScrollOffset uint64 // Always below the ground tile width
	Started      bool
	Clock        time.Duration // Sum of deltas advanced since the session started
	LastSpawn    time.Duration // Clock value of the latest spawn
	Spawned      bool          // Whether anything spawned since the last reset
}

// Session is the complete game state, owned by the host's frame loop.
// It is not safe for concurrent use.
type Session struct {
	cfg   config.FlappyConfig
	gen   *Generator
	state State
}

// NewSession creates a session on the title screen. A nil rng uses a
// clock-seeded source.
func NewSession(cfg config.FlappyConfig, rng RandSource) *Session {
	if rng == nil {
		rng = NewRand(0)
	}
	s := &Session{
		cfg: cfg,
		gen: NewGenerator(cfg.Obstacles, rng),
	}
	s.Reset()
	return s
}

// Reset restores the freshly constructed state. Configuration and the random
// source are kept.
func (s *Session) Reset() {
	s.state = State{
		Player: Player{
			Y:      s.cfg.Player.StartY,
			Factor: 1.0,
			Alive:  true,
		},
	}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// PlayerY returns the vertical centre of the player.
func (s *Session) PlayerY() float64 {
	return s.state.Player.Y
}

// Factor returns the current velocity factor.
func (s *Session) Factor() float64 {
	return s.state.Player.Factor
}

// Score returns the number of obstacles passed.
func (s *Session) Score() int {
	return s.state.Score
}

// ScrollOffset returns the ground tiling phase.
func (s *Session) ScrollOffset() uint64 {
	return s.state.ScrollOffset
}

// Started reports whether the first jump has happened.
func (s *Session) Started() bool {
	return s.state.Started
}

// Died reports whether the player is dead.
func (s *Session) Died() bool {
	return !s.state.Player.Alive
}

// Obstacles returns a copy of the active obstacles, left to right.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.state.Obstacles))
	copy(out, s.state.Obstacles)
	return out
}

// Snapshot returns a deep copy of the session state that stays valid while
// the session keeps advancing.
func (s *Session) Snapshot() (State, error) {
	var out State
	if err := copier.CopyWithOption(&out, &s.state, copier.Option{DeepCopy: true}); err != nil {
		return State{}, fmt.Errorf("game: snapshot: %w", err)
	}
	return out, nil
}

// lastObstacle returns the most recently spawned obstacle still on screen.
func (s *Session) lastObstacle() *Obstacle {
	if len(s.state.Obstacles) == 0 {
		return nil
	}
	return &s.state.Obstacles[len(s.state.Obstacles)-1]
}
