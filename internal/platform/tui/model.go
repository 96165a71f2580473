package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexring/internal/core"
	"github.com/vovakirdan/hexring/internal/game"
)

// statusRows are the rows under the canvas: HUD and help line.
const statusRows = 2

// Options configures the frame driver.
type Options struct {
	FPS    int
	Width  int
	Height int
	Logger *log.Logger
}

// Model is the Bubble Tea model driving one game.
type Model struct {
	game     *game.Game
	hud      *HUD
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	fps      int
	width    int
	last     time.Time
	quitting bool
}

// NewModel creates a model for g. hud must be the HUD g was created with.
func NewModel(g *game.Game, hud *HUD, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		game:   g,
		hud:    hud,
		screen: core.NewScreen(opts.Width, max(opts.Height-statusRows, 1)),
		keys:   DefaultKeyMap(),
		help:   h,
		logger: opts.Logger,
		fps:    opts.FPS,
		width:  opts.Width,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, max(msg.Height-statusRows, 1))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.End(game.EndQuit)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		if s := m.game.Schema(); s != nil {
			if err := m.game.Reload(s); err != nil {
				m.logger.Error("reload failed", "schema", s.ID, "error", err)
			}
		}
		return m, nil
	}

	if k, ok := m.keys.forwarded(msg); ok {
		m.game.KeyDown(k)
	}
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.fps)
	if !m.last.IsZero() {
		dt = now.Sub(m.last)
	}
	m.last = now

	m.game.Update(dt)
	return m, tickCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Draw(core.NewCanvas(m.screen, game.CanvasSize, 0))

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.hud.View(m.game.State(), m.width),
		hudLabelStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, g *game.Game, hud *HUD, opts Options) error {
	p := tea.NewProgram(
		NewModel(g, hud, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
