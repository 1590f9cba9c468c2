package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// Prompt selects the overlay text shown over the playfield.
type Prompt int

const (
	PromptNone    Prompt = iota
	PromptStart          // title screen
	PromptRestart        // after death
)

// Prompt returns which overlay the host should show.
func (s *Session) Prompt() Prompt {
	switch {
	case !s.state.Started:
		return PromptStart
	case !s.state.Player.Alive:
		return PromptRestart
	default:
		return PromptNone
	}
}

// Rotation returns the sprite angle in radians. A dead player tumbles with
// its height; a live one leans while its factor is below terminal speed.
func (s *Session) Rotation() float64 {
	p := s.state.Player
	if !p.Alive {
		return p.Y / 100.0
	}
	if p.Factor < 1.0 {
		return (1.0 - core.AbsF(p.Factor)) / 4.0
	}
	return 0
}
