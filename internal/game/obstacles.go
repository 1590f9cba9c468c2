package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RandSource is the randomness used for gap placement.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type RandSource interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewRand returns a seeded RandSource. A zero seed derives one from the clock.
func NewRand(seed int64) RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Obstacle is one pillar pair. X is the left edge in world units and GapY the
// vertical centre of the opening.
type Obstacle struct {
	X    int
	GapY int
}

// Right returns the right edge for an obstacle of the given width.
func (o Obstacle) Right(width int) int {
	return o.X + width
}

// Generator places new obstacles. Each gap centre stays within MaxStep of the
// previous one so consecutive gaps are always reachable.
type Generator struct {
	rng          RandSource
	topMargin    int
	bottomMargin int
	maxStep      int
}

// NewGenerator creates a generator using the obstacle settings of cfg.
func NewGenerator(cfg config.ObstaclesConfig, rng RandSource) *Generator {
	return &Generator{
		rng:          rng,
		topMargin:    cfg.TopMargin,
		bottomMargin: cfg.BottomMargin,
		maxStep:      cfg.MaxStep,
	}
}

// Bounds returns the inclusive window for the next gap centre.
// prev is nil when no obstacle is on screen.
func (g *Generator) Bounds(prev *Obstacle, height int) (lo, hi int) {
	lo = g.topMargin
	hi = height - g.bottomMargin
	if prev != nil {
		lo = core.Max(lo, prev.GapY-g.maxStep)
		hi = core.Min(hi, prev.GapY+g.maxStep)
	}
	return lo, hi
}

// Spawn returns a new obstacle at the right edge of the viewport.
// When the window is empty (viewport too short) the gap sits at its lower bound.
func (g *Generator) Spawn(prev *Obstacle, width, height int) Obstacle {
	lo, hi := g.Bounds(prev, height)
	y := lo
	if hi > lo {
		y = lo + g.rng.Intn(hi-lo+1)
	}
	return Obstacle{X: width, GapY: y}
}
