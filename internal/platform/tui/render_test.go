package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/polyarcade/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorBrightRed)
	s.DrawTextColor(2, 0, "cd", core.ColorBrightRed)
	s.SetCell(5, 1, '#', core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "abcd") {
		t.Errorf("same-colored cells should render as one run, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "#") {
		t.Errorf("second row lost its cell: %q", lines[1])
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
	// Unknown colors fall back instead of panicking.
	_ = styleFor(core.Color(200)).Render("x")
}
