package tui

import (
	"testing"

	"github.com/vovakirdan/agent8/internal/config"
	"github.com/vovakirdan/agent8/internal/core"
)

func updateMenu(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, config.DifficultyNormal)
	if m.Preset() != config.DifficultyNormal {
		t.Fatalf("preset = %q", m.Preset())
	}

	// Move to the difficulty row
	for m.items[m.cursor].kind != rowDifficulty {
		m = updateMenu(m, "down")
	}
	m = updateMenu(m, "right")
	if m.Preset() != config.DifficultyHard {
		t.Errorf("right: preset = %q", m.Preset())
	}
	m = updateMenu(m, "left", "left", "left")
	if m.Preset() != "" {
		t.Errorf("left x3: preset = %q", m.Preset())
	}
	m = updateMenu(m, "left")
	if m.Preset() != config.DifficultyFixed {
		t.Errorf("left should wrap, preset = %q", m.Preset())
	}
}

func TestMenuResults(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

	scores := updateMenu(NewMenuModel(nil, cfg, ""), "tab").result()
	if !scores.WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	quit := updateMenu(NewMenuModel(nil, cfg, ""), "q").result()
	if !quit.Quit {
		t.Error("q should quit")
	}

	m := NewMenuModel(nil, cfg, config.DifficultyEasy)
	for m.items[m.cursor].kind != rowQuit {
		m = updateMenu(m, "down")
	}
	if r := updateMenu(m, "enter").result(); !r.Quit || r.Preset != config.DifficultyEasy {
		t.Errorf("quit row result = %+v", r)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}
