package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/agent8/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(1, 0, "ab", core.ColorRed)
	s.DrawTextColored(3, 0, "cd", core.ColorBlue)
	s.DrawText(0, 2, "end")

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 10 {
			t.Errorf("line %d width = %d", i, w)
		}
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "end") {
		t.Errorf("last line = %q", lines[2])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != colorStyles[core.ColorDefault].Render("x") {
		t.Errorf("unknown color rendered as %q", got)
	}
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name    string
		state   core.GameState
		best    int
		want    []string
		notWant []string
	}{
		{"playing", core.GameState{Phase: "PLAY", Score: 300}, 1200, []string{"PLAY", "BEST: 1200", "esc: menu"}, []string{"RESPAWN"}},
		{"new best", core.GameState{Phase: "PLAY", Score: 1500}, 1200, []string{"BEST: 1500"}, nil},
		{"dead", core.GameState{Phase: "DEAD", GameOver: true}, 0, []string{"DEAD", "SPACE TO RESPAWN"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderStatus(tc.state, tc.best, 100)
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("status %q lacks %q", got, w)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(got, w) {
					t.Errorf("status %q has %q", got, w)
				}
			}
			if lipgloss.Width(got) > 100 {
				t.Errorf("status is %d wide", lipgloss.Width(got))
			}
		})
	}

	if narrow := RenderStatus(core.GameState{Phase: "PLAY"}, 0, 10); strings.Contains(narrow, "esc: menu") {
		t.Error("hints should be dropped when there is no room")
	}
}
