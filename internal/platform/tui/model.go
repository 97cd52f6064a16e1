package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/brickbreaker"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// helpHeight is the number of rows reserved under the playfield.
const helpHeight = 1

// Options tunes a Model beyond the runtime config.
type Options struct {
	// Autopilot lets the computer steer the paddle (demo mode).
	// Keyboard input still applies on top of it.
	Autopilot bool

	// Logger receives phase changes and lifecycle events. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a Brick Breaker game.
type Model struct {
	game     *brickbreaker.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	pilot    *brickbreaker.Autopilot
	logger   *log.Logger
	phase    brickbreaker.Phase
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *brickbreaker.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var pilot *brickbreaker.Autopilot
	if opts.Autopilot {
		pilot = brickbreaker.NewAutopilot(game.Config().Paddle.Speed)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		pilot:  pilot,
		logger: logger,
		phase:  game.Phase(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	snap := m.game.Snapshot()
	m.logger.Info("game started",
		"fps", m.config.TickRate,
		"autopilot", m.pilot != nil,
		"bricks", snap.BricksAlive(),
	)
	return tickCmd(m.config.TickRate)
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

// handleKey applies paddle moves immediately; there is no input queue.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit", "phase", m.phase, "ticks", m.game.Ticks())
		m.quitting = true
		return m, tea.Quit
	}

	m.game.HandleAction(action)
	return m, nil
}

// handleResize rescales the drawing surface. The simulation works in
// playfield units, so the game itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width

	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation step. Ticking stops once the game has ended.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase.Terminal() {
		return m, nil
	}

	if m.pilot != nil {
		m.game.HandleAction(m.pilot.Action(m.game.Snapshot()))
	}

	result := m.game.Step()
	if result.BricksDestroyed > 0 {
		m.logger.Debug("bricks destroyed",
			"count", result.BricksDestroyed,
			"tick", m.game.Ticks(),
		)
	}

	if result.Phase != m.phase {
		snap := m.game.Snapshot()
		m.logger.Info("game ended",
			"phase", result.Phase,
			"ticks", snap.Tick,
			"bricks_left", snap.BricksAlive(),
		)
		m.phase = result.Phase
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// Phase returns the last observed game phase.
func (m Model) Phase() brickbreaker.Phase {
	return m.phase
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game *brickbreaker.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
