package config

import "github.com/vovakirdan/agent8/internal/core"

// Progression types.
const (
	ProgressNone  = "none"
	ProgressScore = "score"
	ProgressTime  = "time"
)

// minSpawnDie keeps tool spawns from flooding the screen at max difficulty.
const minSpawnDie = 5

// DifficultyManager turns score or elapsed ticks into a difficulty level
// and scales the tool tunables by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.Clamp(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.Clamp(level, 0, 1)
}

// SetEnabled turns progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	if !d.cfg.Enabled {
		return false
	}
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime:
		return true
	default:
		return false
	}
}

// progress is how far the run is towards max difficulty, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	var done float64
	if d.cfg.Progression.Type == ProgressTime {
		done = float64(ticks)
	} else {
		done = float64(score)
	}
	return core.Clamp(done/maxAt, 0, 1)
}

// Level returns the difficulty level in [0, 1]. It starts at the initial
// level and climbs linearly to 1 as the run progresses.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	return d.initialLevel + d.progress(score, ticks)*(1-d.initialLevel)
}

// Speed scales a base speed by up to 1 + speed_multiplier.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnDie returns the number of faces on the tool spawn die. Fewer faces
// means more frequent tools.
func (d *DifficultyManager) SpawnDie(baseDie int, score, ticks int) int {
	reduction := int(d.Level(score, ticks) * float64(d.cfg.Scaling.SpawnReduction))
	return max(baseDie-reduction, min(baseDie, minSpawnDie))
}
