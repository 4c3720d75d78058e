package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/agent8/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"s", core.ActionDown, false},
		{" ", core.ActionFire, false},
		{"esc", core.ActionExit, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"enter", core.ActionConfirm, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		action, quit := km.MapKey(keyMsg(tc.key))
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.key, action, quit, tc.action, tc.quit)
		}
	}
}

func TestMapKeyToTracker(t *testing.T) {
	km := NewKeyMapper()
	tracker := core.NewHoldTracker(3)

	if km.MapKeyToTracker(keyMsg(" "), tracker) {
		t.Fatal("space is not a quit key")
	}
	// Auto-repeat of the held key
	km.MapKeyToTracker(keyMsg(" "), tracker)

	frame := tracker.Frame()
	if !frame.Has(core.ActionFire) || !frame.IsHeld(core.ActionFire) {
		t.Error("first frame should see a fire press")
	}
	if frame = tracker.Frame(); frame.Has(core.ActionFire) || !frame.IsHeld(core.ActionFire) {
		t.Error("second frame should see fire held without a new press")
	}

	if !km.MapKeyToTracker(keyMsg("q"), tracker) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"left", MenuActionLeft},
		{"right", MenuActionRight},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}
