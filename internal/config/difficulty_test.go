package config

import (
	"math"
	"testing"
)

func TestDifficultyNoneKeepsShippedTuning(t *testing.T) {
	d := NewDifficultyManager(DefaultAgent8Config().Difficulty)

	if d.IsEnabled() {
		t.Error("progression type none should not be enabled")
	}
	for _, score := range []int{0, 1000, 100000} {
		if got := d.SpawnDie(50, score, 0); got != 50 {
			t.Errorf("SpawnDie at score %d = %d, expected 50", score, got)
		}
		if got := d.Speed(8, score, 0); got != 8 {
			t.Errorf("Speed at score %d = %v, expected 8", score, got)
		}
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, SpawnReduction: 30},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		level float64
		die   int
		speed float64
	}{
		{0, 0, 50, 8},
		{500, 0.5, 35, 10},
		{1000, 1, 20, 12},
		{5000, 1, 20, 12}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.level) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := d.SpawnDie(50, tc.score, 0); got != tc.die {
			t.Errorf("SpawnDie(%d) = %d, expected %d", tc.score, got, tc.die)
		}
		if got := d.Speed(8, tc.score, 0); math.Abs(got-tc.speed) > 1e-9 {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.speed)
		}
	}
}

func TestDifficultyTimeProgressionAndInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	d.SetInitialLevel(0.5)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}

	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}

	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("SetEnabled(false) should disable progression")
	}
}

func TestSpawnDieFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:      ScalingConfig{SpawnReduction: 1000},
	})

	if got := d.SpawnDie(50, 10, 0); got != minSpawnDie {
		t.Errorf("SpawnDie = %d, expected floor %d", got, minSpawnDie)
	}
	if got := d.SpawnDie(3, 10, 0); got != 3 {
		t.Errorf("small die should not grow, got %d", got)
	}
}
