package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/pacing"
)

// Smallest terminal that still shows a playable field
const (
	minScreenW = 24
	minScreenH = 10
	footerH    = 1
)

// Model is the Bubble Tea model running one round of the game.
type Model struct {
	game     *debris.Game
	screen   *core.Screen
	canvas   *ScreenCanvas
	keys     KeyMap
	help     help.Model
	tracker  *KeyTracker
	sched    *pacing.Scheduler
	clock    pacing.Clock
	logger   *log.Logger
	state    core.GameState
	quitting bool
}

// NewModel creates a model for the given game.
// A nil clock means the wall clock; a nil logger discards.
func NewModel(game *debris.Game, cfg config.Config, rt core.RuntimeConfig, clock pacing.Clock, logger *log.Logger) Model {
	if clock == nil {
		clock = pacing.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	area := playArea(rt.ScreenW, rt.ScreenH)
	screen := core.NewScreen(area.W, area.H)
	keys := NewKeyMap(cfg.Controls)
	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		game:    game,
		screen:  screen,
		canvas:  NewScreenCanvas(screen, area, cfg.Playfield.Width, cfg.Playfield.Height),
		keys:    keys,
		help:    h,
		tracker: NewKeyTracker(cfg.Terminal),
		sched:   pacing.New(rt.TickInterval, clock),
		clock:   clock,
		logger:  logger,
		state:   game.State(),
	}
}

// playArea is the screen minus the help footer.
func playArea(w, h int) core.Rect {
	return core.NewRect(0, 0, max(w, 0), max(h-footerH, 0))
}

// Init starts the fixed-tick loop.
func (m Model) Init() tea.Cmd {
	m.sched.Start()
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records a key press; it takes effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.tracker.Press(a, m.clock.Now())
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	area := playArea(msg.Width, msg.Height)
	m.screen.Resize(area.W, area.H)
	m.canvas.SetArea(area)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one loop iteration: poll, step, then schedule the next tick
// against the fixed deadline.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.tracker.Frame(m.clock.Now())
	if frame.Quit {
		m.quitting = true
		m.logger.Info("quit", "tick", m.game.Tick(), "score", m.game.Score())
		return m, tea.Quit
	}

	result := m.game.Step(frame)
	if result.Hits > 0 {
		m.logger.Debug("debris destroyed", "tick", m.game.Tick(), "hits", result.Hits, "score", result.State.Score)
	}
	if result.State.GameOver && !m.state.GameOver {
		m.logger.Info("ship destroyed", "tick", m.game.Tick(), "score", result.State.Score)
	}
	m.state = result.State

	return m, tickCmd(m.sched.Next())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.screen.Width() < minScreenW || m.screen.Height()+footerH < minScreenH {
		return fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d.\nPress %s to quit.",
			m.screen.Width(), m.screen.Height()+footerH, minScreenW, minScreenH, m.keys.Quit.Help().Key)
	}

	m.screen.Clear()
	m.game.Draw(m.canvas)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *debris.Game, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, rt, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
