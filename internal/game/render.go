package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PillarChar     = '█'
	PillarCapUpper = '▄'
	PillarCapLower = '▀'
	GroundEdge     = '═'
	GroundMark     = '╤'
	GroundDark     = '▓'
	GroundLight    = '▒'
	PlayerLevel    = '▶'
	PlayerLean     = '↘'
)

// leanThreshold is the rotation at which a live player is drawn leaning.
const leanThreshold = 0.125

var tumbleGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Labels holds the two overlay prompts.
type Labels struct {
	Start   string
	Restart string
}

// DefaultLabels returns prompts for the default key bindings.
func DefaultLabels() Labels {
	return Labels{
		Start:   "Press SPACE to start",
		Restart: "Press R to play again",
	}
}

// Renderer draws a session onto a character screen. One screen cell covers
// CellWidth x CellHeight world units.
type Renderer struct {
	cfg    config.FlappyConfig
	labels Labels
}

// NewRenderer creates a renderer for the given configuration.
func NewRenderer(cfg config.FlappyConfig, labels Labels) *Renderer {
	return &Renderer{cfg: cfg, labels: labels}
}

// Viewport converts a screen size in cells to world units.
func (r *Renderer) Viewport(cols, rows int) (width, height int) {
	return cols * r.cfg.Render.CellWidth, rows * r.cfg.Render.CellHeight
}

// Render draws the whole frame. It only reads the session.
func (r *Renderer) Render(s *Session, dst *core.Screen) {
	dst.Fill(' ', core.ColorSky)
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	_, h := r.Viewport(dst.Width(), dst.Height())
	groundRow := core.Clamp(
		core.FloorDiv(h-r.cfg.World.GroundTileHeight, r.cfg.Render.CellHeight),
		0, dst.Height(),
	)

	r.drawGround(s, dst, groundRow)
	for _, o := range s.state.Obstacles {
		r.drawObstacle(dst, o, groundRow)
	}
	r.drawPlayer(s, dst)

	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", s.state.Score), core.ColorHUD)

	switch s.Prompt() {
	case PromptStart:
		r.drawCenteredMessage(dst, r.labels.Start)
	case PromptRestart:
		r.drawCenteredMessage(dst, r.labels.Restart)
	}
}

// drawGround tiles the ground from groundRow down, shifted by the scroll offset.
func (r *Renderer) drawGround(s *Session, dst *core.Screen, groundRow int) {
	tile := r.cfg.World.GroundTileWidth
	cw := r.cfg.Render.CellWidth
	offset := int(s.state.ScrollOffset)

	for x := 0; x < dst.Width(); x++ {
		phase := (x*cw + offset) % tile
		edge := GroundEdge
		if phase < cw {
			edge = GroundMark
		}
		dst.SetColored(x, groundRow, edge, core.ColorGroundEdge)

		fill := GroundDark
		if phase >= tile/2 {
			fill = GroundLight
		}
		for y := groundRow + 1; y < dst.Height(); y++ {
			dst.SetColored(x, y, fill, core.ColorGround)
		}
	}
}

// drawObstacle renders the solid parts above and below the gap.
func (r *Renderer) drawObstacle(dst *core.Screen, o Obstacle, groundRow int) {
	cw, ch := r.cfg.Render.CellWidth, r.cfg.Render.CellHeight
	gap := r.cfg.Obstacles.GapHalfHeight

	x0 := core.FloorDiv(o.X, cw)
	x1 := core.FloorDiv(o.Right(r.cfg.ObstacleWidth())-1, cw)
	cols := x1 - x0 + 1

	upperEnd := core.FloorDiv(o.GapY-gap, ch)
	lowerStart := core.FloorDiv(o.GapY+gap+ch-1, ch)

	if upperEnd > 0 {
		dst.DrawRect(core.NewRect(x0, 0, cols, upperEnd), PillarChar, core.ColorPillar)
		dst.DrawHLine(x0, upperEnd-1, cols, PillarCapUpper, core.ColorPillarCap)
	}
	if lowerStart < groundRow {
		dst.DrawRect(core.NewRect(x0, lowerStart, cols, groundRow-lowerStart), PillarChar, core.ColorPillar)
		dst.DrawHLine(x0, lowerStart, cols, PillarCapLower, core.ColorPillarCap)
	}
}

func (r *Renderer) drawPlayer(s *Session, dst *core.Screen) {
	p := s.state.Player
	x := core.FloorDiv(r.cfg.Player.X, r.cfg.Render.CellWidth)
	y := core.FloorDiv(int(math.Floor(p.Y)), r.cfg.Render.CellHeight)

	color := core.ColorPlayer
	if !p.Alive {
		color = core.ColorPlayerDead
	}
	dst.SetColored(x, y, PlayerGlyph(s.Rotation(), p.Alive), color)
}

// drawCenteredMessage draws a boxed line of text in the middle of the screen.
func (r *Renderer) drawCenteredMessage(dst *core.Screen, text string) {
	n := len([]rune(text))
	boxW := n + 4
	boxH := 3
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorPrompt)
	dst.DrawBox(box, core.ColorPrompt)
	dst.DrawTextCentered(boxY+1, text, core.ColorPrompt)
}

// PlayerGlyph picks the sprite for a rotation in radians. A live player is
// either level or leaning; a dead one tumbles through eight directions.
func PlayerGlyph(rotation float64, alive bool) rune {
	if alive {
		if rotation >= leanThreshold {
			return PlayerLean
		}
		return PlayerLevel
	}
	a := math.Mod(rotation, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	i := int(math.Floor(a/(math.Pi/4)+0.5)) % len(tumbleGlyphs)
	return tumbleGlyphs[i]
}
