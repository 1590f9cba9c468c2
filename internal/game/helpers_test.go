package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const frame = 16 * time.Millisecond

// scriptedRand replays values (modulo n) and records every requested range.
type scriptedRand struct {
	values []int
	calls  int
	ranges []int
}

func (r *scriptedRand) Intn(n int) int {
	r.ranges = append(r.ranges, n)
	v := 0
	if len(r.values) > 0 {
		v = r.values[r.calls%len(r.values)]
	}
	r.calls++
	return v % n
}

func newTestSession(t *testing.T, rng RandSource) *Session {
	t.Helper()
	return NewSession(config.DefaultFlappyConfig(), rng)
}

// startedAt returns a started session with the player parked at y with a
// zero factor and no pending spawn.
func startedAt(t *testing.T, y float64, obstacles ...Obstacle) *Session {
	t.Helper()
	s := newTestSession(t, &scriptedRand{})
	s.Jump()
	s.state.Player.Y = y
	s.state.Player.Factor = 0
	s.state.Obstacles = append([]Obstacle(nil), obstacles...)
	s.state.Spawned = true
	s.state.LastSpawn = s.state.Clock
	return s
}

// snapshot copies the session state, failing the test on error.
func snapshot(t *testing.T, s *Session) State {
	t.Helper()
	st, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	return st
}
