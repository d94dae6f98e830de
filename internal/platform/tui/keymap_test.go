package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/polyarcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runeKey("k"), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionFire, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("r"), core.ActionRestart, false},
		{runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want || quit != tt.wantQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrameAccumulates(t *testing.T) {
	km := NewKeyMapper()
	var frame core.InputFrame

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, &frame)
	km.MapKeyToFrame(runeKey("z"), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionFire) {
		t.Errorf("frame should hold left and fire")
	}
	if frame.Has(core.ActionRight) {
		t.Errorf("frame should not hold right")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should be reported as quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("b"), MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
