package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded YAML cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: PhysicsConfig{
			FallDivisor:        1.5,
			AccelDivisor:       400,
			MaxFactor:          1.0,
			JumpFactor:         -1.0,
			FloorDeathFactor:   -1.5,
			CeilingDeathFactor: 0,
			ScrollDivisor:      4,
		},
		World: WorldConfig{
			GroundTileWidth:  64,
			GroundTileHeight: 24,
			SpawnIntervalMS:  2500,
		},
		Obstacles: ObstaclesConfig{
			SpriteWidth:   16,
			Scale:         5,
			GapHalfHeight: 100,
			MaxStep:       100,
			TopMargin:     300,
			BottomMargin:  200,
		},
		Player: PlayerConfig{
			X:        200,
			StartY:   200,
			HalfSize: 16,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 24,
			FPS:        60,
		},
		Audio: AudioConfig{
			Output: "bell",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
