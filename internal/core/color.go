package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal styles.
type Color uint8

// Colors used by the game renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorGroundEdge
	ColorPillar
	ColorPillarCap
	ColorPlayer
	ColorPlayerDead
	ColorHUD
	ColorPrompt
)

// String returns the color name, used in screenshots and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorGround:
		return "ground"
	case ColorGroundEdge:
		return "ground-edge"
	case ColorPillar:
		return "pillar"
	case ColorPillarCap:
		return "pillar-cap"
	case ColorPlayer:
		return "player"
	case ColorPlayerDead:
		return "player-dead"
	case ColorHUD:
		return "hud"
	case ColorPrompt:
		return "prompt"
	default:
		return "unknown"
	}
}
