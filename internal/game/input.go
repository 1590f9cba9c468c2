package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// Jump flaps the player. It starts the session on the title screen and does
// nothing once the player is dead.
func (s *Session) Jump() Events {
	if !s.state.Player.Alive {
		return nil
	}
	s.state.Player.Factor = s.cfg.Physics.JumpFactor
	s.state.Started = true
	return Events{EventJump}
}

// Restart resets the session after death. It reports whether it applied.
func (s *Session) Restart() bool {
	if s.state.Player.Alive {
		return false
	}
	s.Reset()
	return true
}

// Handle dispatches a key action. Actions the core does not own are ignored.
func (s *Session) Handle(a core.Action) Events {
	switch a {
	case core.ActionJump:
		return s.Jump()
	case core.ActionRestart:
		s.Restart()
	}
	return nil
}
