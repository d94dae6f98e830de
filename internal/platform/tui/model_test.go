package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/registry"
	"github.com/vovakirdan/polyarcade/internal/storage"
)

// stubDemo ends the game once it sees fire and reports a fixed score.
type stubDemo struct {
	resets int
	steps  int
	closed bool
	last   core.InputFrame
	state  core.DemoState
}

func (d *stubDemo) ID() string    { return "zz-tui-stub" }
func (d *stubDemo) Title() string { return "Stub" }

func (d *stubDemo) Reset(core.RuntimeConfig) {
	d.resets++
	d.state = core.DemoState{Lives: 1}
}

func (d *stubDemo) Step(in core.InputFrame) core.DemoState {
	d.steps++
	d.last = in
	switch {
	case in.Has(core.ActionFire):
		d.state = core.DemoState{Score: 42, Over: true}
	case in.Has(core.ActionRestart):
		d.state = core.DemoState{Lives: 1}
	case in.Has(core.ActionPause):
		d.state.Paused = !d.state.Paused
	}
	return d.state
}

func (d *stubDemo) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (d *stubDemo) State() core.DemoState   { return d.state }
func (d *stubDemo) Close()                  { d.closed = true }

func init() {
	registry.Register("zz-tui-stub", func() registry.Demo { return &stubDemo{} })
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return step(t, m, TickMsg{})
}

func TestModelFeedsInputForOneTick(t *testing.T) {
	demo := &stubDemo{}
	m := NewModel(demo, nil, core.DefaultConfig())
	m.Init()
	if demo.resets != 1 {
		t.Fatalf("Init should reset the demo once, got %d", demo.resets)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	if !demo.last.Has(core.ActionLeft) {
		t.Error("tick should deliver the pressed key")
	}
	m = tick(t, m)
	if !demo.last.Empty() {
		t.Error("input should be cleared after one tick")
	}
	if demo.steps != 2 {
		t.Errorf("steps = %d, want 2", demo.steps)
	}
	_ = m
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store := openStore(t)
	demo := &stubDemo{}
	m := NewModel(demo, store, core.DefaultConfig())
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	scores, err := store.TopScores("zz-tui-stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 42 {
		t.Fatalf("scores = %+v, want one 42", scores)
	}

	// A second game over after a restart is a new entry.
	m = step(t, m, runeKey("r"))
	m = tick(t, m)
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = tick(t, m)
	if scores, _ := store.TopScores("zz-tui-stub", 10); len(scores) != 2 {
		t.Errorf("scores after replay = %d, want 2", len(scores))
	}
}

func TestModelBackOnlyWhenOverOrPaused(t *testing.T) {
	demo := &stubDemo{}
	m := NewModel(demo, nil, core.DefaultConfig())
	m.Init()
	m = tick(t, m)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}
	m = tick(t, m)

	m = step(t, m, runeKey("p"))
	m = tick(t, m)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || !demo.closed {
		t.Error("back while paused should leave and close the demo")
	}
	if m.View() != "" {
		t.Error("a finished model should render nothing")
	}
}

func TestModelQuit(t *testing.T) {
	demo := &stubDemo{}
	m := NewModel(demo, nil, core.DefaultConfig())
	m.Init()

	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if !demo.closed {
		t.Error("quit should close the demo")
	}
}

func TestModelResizeKeepsDemo(t *testing.T) {
	demo := &stubDemo{}
	m := NewModel(demo, nil, core.DefaultConfig())
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if demo.resets != 1 {
		t.Errorf("resize should not reset, resets = %d", demo.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestSessionMenuToDemoAndBack(t *testing.T) {
	store := openStore(t)
	s := NewSessionModel(store, core.DefaultConfig(), nil)

	update := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// Walk the cursor to the stub demo.
	for i, item := range s.menu.items {
		if item.DemoID == "zz-tui-stub" {
			for j := 0; j < i; j++ {
				update(tea.KeyMsg{Type: tea.KeyDown})
			}
		}
	}
	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.game == nil || s.game.demo.ID() != "zz-tui-stub" {
		t.Fatal("enter should start the selected demo")
	}

	update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	update(TickMsg{})
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.game != nil {
		t.Fatal("back after game over should return to the menu")
	}

	for _, item := range s.menu.items {
		if item.DemoID == "zz-tui-stub" && item.Best != 42 {
			t.Errorf("menu best = %d, want 42", item.Best)
		}
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.scoreboard != nil || s.quitting {
		t.Error("esc should go back to the menu")
	}
}
