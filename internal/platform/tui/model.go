package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/scoring"
)

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model that drives one game session.
// Each TickMsg advances the fixed-step clock by the wall time since the
// previous tick; View then draws the resulting state.
type Model struct {
	game     *flappy.Game
	clock    *core.FixedStep
	renderer *Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig

	// ScreenshotDir overrides the default ~/.arcade/screenshots.
	ScreenshotDir string

	lastTick time.Time
	status   string
	quitting bool
}

// NewModel creates a session. The tracker carries the best score and its store.
func NewModel(cfg config.FlappyConfig, tracker *scoring.Tracker, sheet *assets.Sheet, rc core.RuntimeConfig, logger *log.Logger) Model {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     flappy.New(cfg, tracker, rc.Seed),
		clock:    core.NewFixedStep(cfg.Physics.StepHz),
		renderer: NewRenderer(cfg, sheet),
		screen:   core.NewScreen(rc.ScreenW, playRows(rc.ScreenH)),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		config:   rc,
	}
}

// playRows leaves the last terminal row for the help line.
func playRows(h int) int {
	return core.Max(h-1, 1)
}

// Game returns the session's game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Paused reports whether the session is paused.
func (m Model) Paused() bool {
	return m.clock.Paused()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}

	case core.ActionPause:
		if m.game.Phase() == flappy.PhaseRunning {
			m.clock.TogglePause()
		}

	case core.ActionActivate:
		// Input is dropped while paused.
		if !m.clock.Paused() {
			m.game.Activate()
		}
	}
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.clock.Advance(now.Sub(m.lastTick), m.game.Update)
	}
	m.lastTick = now
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.renderer.Draw(m.screen, m.game.Snapshot(), m.clock.Paused())

	dir := m.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.game.Snapshot(), m.clock.Paused())

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts a local Bubble Tea program for one session.
func Run(cfg config.FlappyConfig, tracker *scoring.Tracker, sheet *assets.Sheet, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, tracker, sheet, rc, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
