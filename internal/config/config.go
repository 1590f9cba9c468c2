// Package config provides YAML-based configuration for the game and its
// terminal host.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunables of the game. The defaults reproduce the
// classic behaviour; units are world units (see RenderConfig) and milliseconds.
type FlappyConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	World     WorldConfig     `yaml:"world"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Player    PlayerConfig    `yaml:"player"`
	Render    RenderConfig    `yaml:"render"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PhysicsConfig defines the velocity factor integration.
type PhysicsConfig struct {
	FallDivisor        float64 `yaml:"fall_divisor"`         // position += factor * ms / FallDivisor
	AccelDivisor       float64 `yaml:"accel_divisor"`        // factor += ms / AccelDivisor
	MaxFactor          float64 `yaml:"max_factor"`           // terminal fall factor
	JumpFactor         float64 `yaml:"jump_factor"`          // factor set by a jump
	FloorDeathFactor   float64 `yaml:"floor_death_factor"`   // factor after hitting the ground
	CeilingDeathFactor float64 `yaml:"ceiling_death_factor"` // factor after hitting the ceiling
	ScrollDivisor      int     `yaml:"scroll_divisor"`       // scroll step = whole ms / ScrollDivisor
}

// WorldConfig defines the ground tiles and obstacle cadence.
type WorldConfig struct {
	GroundTileWidth  int `yaml:"ground_tile_width"`
	GroundTileHeight int `yaml:"ground_tile_height"`
	SpawnIntervalMS  int `yaml:"spawn_interval_ms"`
}

// ObstaclesConfig defines obstacle geometry and the gap generation window.
type ObstaclesConfig struct {
	SpriteWidth   int `yaml:"sprite_width"`
	Scale         int `yaml:"scale"` // obstacle width = SpriteWidth * Scale
	GapHalfHeight int `yaml:"gap_half_height"`
	MaxStep       int `yaml:"max_step"`      // max gap centre change between neighbours
	TopMargin     int `yaml:"top_margin"`    // lowest allowed gap centre
	BottomMargin  int `yaml:"bottom_margin"` // gap centre stays above height - BottomMargin
}

// PlayerConfig defines the player start state and hit-box.
type PlayerConfig struct {
	X        int     `yaml:"x"`
	StartY   float64 `yaml:"start_y"`
	HalfSize int     `yaml:"half_size"`
}

// RenderConfig defines how the terminal grid maps onto world units.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	FPS        int `yaml:"fps"`
}

// AudioConfig selects the sound output and asset location.
type AudioConfig struct {
	Output    string `yaml:"output"`     // "bell", "log" or "off"
	AssetsDir string `yaml:"assets_dir"` // empty = built-in asset names only
}

// SpawnInterval returns the obstacle spawn interval as a duration.
func (c FlappyConfig) SpawnInterval() time.Duration {
	return time.Duration(c.World.SpawnIntervalMS) * time.Millisecond
}

// ObstacleWidth returns the horizontal extent of one obstacle.
func (c FlappyConfig) ObstacleWidth() int {
	return c.Obstacles.SpriteWidth * c.Obstacles.Scale
}

// Validate checks that the configuration can drive a session.
func (c FlappyConfig) Validate() error {
	var errs []error

	positive := []struct {
		name string
		v    int
	}{
		{"physics.scroll_divisor", c.Physics.ScrollDivisor},
		{"world.ground_tile_width", c.World.GroundTileWidth},
		{"world.ground_tile_height", c.World.GroundTileHeight},
		{"world.spawn_interval_ms", c.World.SpawnIntervalMS},
		{"obstacles.sprite_width", c.Obstacles.SpriteWidth},
		{"obstacles.scale", c.Obstacles.Scale},
		{"obstacles.gap_half_height", c.Obstacles.GapHalfHeight},
		{"player.half_size", c.Player.HalfSize},
		{"render.cell_width", c.Render.CellWidth},
		{"render.cell_height", c.Render.CellHeight},
		{"render.fps", c.Render.FPS},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.v))
		}
	}

	if c.Physics.FallDivisor <= 0 {
		errs = append(errs, fmt.Errorf("physics.fall_divisor must be positive, got %g", c.Physics.FallDivisor))
	}
	if c.Physics.AccelDivisor <= 0 {
		errs = append(errs, fmt.Errorf("physics.accel_divisor must be positive, got %g", c.Physics.AccelDivisor))
	}
	if c.Obstacles.MaxStep < 0 {
		errs = append(errs, fmt.Errorf("obstacles.max_step must not be negative, got %d", c.Obstacles.MaxStep))
	}

	switch c.Audio.Output {
	case "bell", "log", "off":
	default:
		errs = append(errs, fmt.Errorf("audio.output must be bell, log or off, got %q", c.Audio.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
