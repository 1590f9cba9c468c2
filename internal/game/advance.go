package game

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Advance runs one frame of simulation.
//
// dt is the real time since the previous frame; width and height are the
// current viewport in world units. Negative dt is treated as zero and
// non-positive dimensions as one. Before the first jump Advance does nothing.
//
// The player is integrated every frame. Scrolling, spawning, collision and
// scoring only happen while the player is alive: after death the world stops
// and the player keeps falling.
func (s *Session) Advance(dt time.Duration, width, height int) Events {
	if !s.state.Started {
		return nil
	}
	if dt < 0 {
		dt = 0
	}
	width = core.Max(width, 1)
	height = core.Max(height, 1)

	s.state.Clock += dt
	s.integrate(float64(dt) / float64(time.Millisecond))

	if !s.state.Player.Alive {
		return nil
	}

	var ev Events
	step := int(dt.Milliseconds()) / s.cfg.Physics.ScrollDivisor
	s.scroll(step)
	ev = s.checkBounds(height, ev)
	s.maybeSpawn(width, height)
	ev = s.sweep(step, ev)
	s.evict()
	return ev
}

// integrate applies the saturating velocity factor.
func (s *Session) integrate(ms float64) {
	p := &s.state.Player
	p.Y += p.Factor * ms / s.cfg.Physics.FallDivisor
	p.Factor += ms / s.cfg.Physics.AccelDivisor
	if p.Factor > s.cfg.Physics.MaxFactor {
		p.Factor = s.cfg.Physics.MaxFactor
	}
}

func (s *Session) scroll(step int) {
	tile := uint64(s.cfg.World.GroundTileWidth)
	s.state.ScrollOffset = (s.state.ScrollOffset + uint64(step)) % tile
}

// checkBounds kills the player on the ground or above the ceiling.
// The ground is tested first; only one of the two applies per frame.
func (s *Session) checkBounds(height int, ev Events) Events {
	p := &s.state.Player
	switch {
	case p.Y > float64(height-s.cfg.World.GroundTileHeight):
		p.Factor = s.cfg.Physics.FloorDeathFactor
		ev = s.kill(ev)
	case p.Y < 0:
		p.Factor = s.cfg.Physics.CeilingDeathFactor
		ev = s.kill(ev)
	}
	return ev
}

func (s *Session) maybeSpawn(width, height int) {
	if s.state.Spawned && s.state.Clock-s.state.LastSpawn <= s.cfg.SpawnInterval() {
		return
	}
	o := s.gen.Spawn(s.lastObstacle(), width, height)
	s.state.Obstacles = append(s.state.Obstacles, o)
	s.state.LastSpawn = s.state.Clock
	s.state.Spawned = true
}

// sweep moves every obstacle left by step and resolves scoring and collisions.
// An obstacle scores on the frame its right edge crosses the left edge of the
// player's hit-box; since obstacles only move left that happens at most once.
func (s *Session) sweep(step int, ev Events) Events {
	half := s.cfg.Player.HalfSize
	gap := s.cfg.Obstacles.GapHalfHeight
	w := s.cfg.ObstacleWidth()

	left := s.cfg.Player.X - half
	right := s.cfg.Player.X + half
	y := int(s.state.Player.Y)
	top := y - half
	bottom := y + half

	for i := range s.state.Obstacles {
		o := &s.state.Obstacles[i]
		prevRight := o.Right(w)
		o.X -= step
		newRight := o.Right(w)

		if left < prevRight && left >= newRight {
			s.state.Score++
			ev = append(ev, EventScore)
			continue
		}
		if right > o.X && left < newRight {
			if top < o.GapY-gap || bottom > o.GapY+gap {
				ev = s.kill(ev)
			}
		}
	}
	return ev
}

// evict drops obstacles that are completely off the left edge.
func (s *Session) evict() {
	w := s.cfg.ObstacleWidth()
	kept := s.state.Obstacles[:0]
	for _, o := range s.state.Obstacles {
		if o.X > -w {
			kept = append(kept, o)
		}
	}
	s.state.Obstacles = kept
}

// kill marks the player dead, reporting a death only for the first hit.
func (s *Session) kill(ev Events) Events {
	if !s.state.Player.Alive {
		return ev
	}
	s.state.Player.Alive = false
	return append(ev, EventDeath)
}
