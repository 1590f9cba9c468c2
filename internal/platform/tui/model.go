package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// footerRows is the space kept below the playfield for key help.
const footerRows = 1

// Options configures a terminal run.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig // initial size in cells, FPS and seed
	Player  audio.Player       // nil plays nothing
	Logger  *log.Logger        // nil discards
	Output  *Output            // nil draws on stdout; share it with a bell player
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	session  *game.Session
	renderer *game.Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	player   audio.Player
	logger   *log.Logger
	runtime  core.RuntimeConfig

	viewW, viewH int // viewport in world units
	lastTick     time.Time
	quitting     bool
}

// NewModel creates a model with a fresh session.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Game.Render.FPS
	}

	player := opts.Player
	if player == nil {
		player = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	m := Model{
		session:  game.NewSession(opts.Game, game.NewRand(rt.Seed)),
		renderer: game.NewRenderer(opts.Game, keys.Labels()),
		screen:   core.NewScreen(0, 0),
		keys:     keys,
		help:     help.New(),
		player:   player,
		logger:   logger,
		runtime:  rt,
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	logger.Info("session ready", "seed", rt.Seed, "fps", rt.TickRate, "viewport", m.viewport())
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height, "viewport", m.viewport())
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey delivers one key press to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.session.Score())
		return m, tea.Quit
	case core.ActionRestart:
		if m.session.Died() {
			m.logger.Info("restart", "score", m.session.Score())
		}
	}

	m.emit(m.session.Handle(action))
	return m, nil
}

// handleTick advances the simulation by the real time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	m.emit(m.session.Advance(dt, m.viewW, m.viewH))
	return m, tickCmd(m.runtime.TickRate)
}

// emit hands events to the audio player and the log.
func (m Model) emit(events game.Events) {
	audio.PlayAll(m.player, events)
	for _, e := range events {
		switch e {
		case game.EventDeath:
			m.logger.Info("game over", "score", m.session.Score())
		default:
			m.logger.Debug("event", "type", e, "score", m.session.Score())
		}
	}
}

// resize fits the playfield to a terminal of cols x rows cells. The
// session keeps running; only the viewport changes.
func (m *Model) resize(cols, rows int) {
	m.runtime.ScreenW = core.Max(cols, 1)
	m.runtime.ScreenH = core.Max(rows, 1)
	playRows := core.Max(m.runtime.ScreenH-footerRows, 1)

	m.screen.Resize(m.runtime.ScreenW, playRows)
	m.help.Width = m.runtime.ScreenW
	m.viewW, m.viewH = m.renderer.Viewport(m.runtime.ScreenW, playRows)
}

func (m Model) viewport() [2]int {
	return [2]int{m.viewW, m.viewH}
}

// Session exposes the running session, read-only by convention.
func (m Model) Session() *game.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.session, m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(NewModel(opts), progOpts...)

	_, err := p.Run()
	return err
}
