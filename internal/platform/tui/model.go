package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/registry"
	"github.com/vovakirdan/polyarcade/internal/storage"
)

// Model is the Bubble Tea model that runs one demo.
type Model struct {
	demo       registry.Demo
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	state      core.DemoState
	quitting   bool
	backToMenu bool
	standalone bool // quit the program instead of returning to a menu
	scoreSaved bool // score already recorded for the current game over
}

// NewModel creates a model for demo. The demo is Reset in Init.
func NewModel(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		demo:      demo,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init resets the demo and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.demo.Reset(m.config)
	return tickCmd(m.config.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has a fixed size and is scaled onto whatever screen we
		// have, so a resize never resets the demo.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.demo.Close()
		return m, tea.Quit
	}

	// Back leaves a finished or paused demo.
	if m.inputFrame.Has(core.ActionBack) && (m.state.Over || m.state.Paused) {
		m.backToMenu = true
		m.demo.Close()
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.state = m.demo.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.recordScore()

	return m, tickCmd(m.config.Interval())
}

// recordScore saves the score once per game over.
func (m *Model) recordScore() {
	if !m.state.Over {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved || m.state.Score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, the demo continues regardless
		m.store.SaveScore(m.demo.ID(), m.state.Score)
	}
	m.scoreSaved = true
}

// saveScreenshot writes the current screen as plain text under
// ~/.polyarcade/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".polyarcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.demo.ID(), timestamp))
	//nolint:errcheck // Best-effort save, the demo continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m Model) draw() {
	m.screen.Clear()
	m.demo.Render(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}

// State returns the state reported by the last tick.
func (m Model) State() core.DemoState { return m.state }

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user asked to leave the demo.
func (m Model) BackToMenu() bool { return m.backToMenu }

// Run plays demo in the terminal until the user quits or backs out.
func Run(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(demo, store, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
