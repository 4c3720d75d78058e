// Package config provides YAML/TOML game configuration loading, difficulty
// management and hot reload for Agent8.
package config

import (
	"errors"
	"fmt"
)

// Agent8Config contains every tunable of the game.
type Agent8Config struct {
	Display    DisplayConfig    `yaml:"display" toml:"display"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Fan        FanConfig        `yaml:"fan" toml:"fan"`
	Tools      ToolsConfig      `yaml:"tools" toml:"tools"`
	Coins      CoinsConfig      `yaml:"coins" toml:"coins"`
	Stars      StarsConfig      `yaml:"stars" toml:"stars"`
	Lasers     LasersConfig     `yaml:"lasers" toml:"lasers"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Fade       FadeConfig       `yaml:"fade" toml:"fade"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// DisplayConfig defines the world size in pixels.
type DisplayConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines Agent8's movement.
type PlayerConfig struct {
	SpawnX        float64 `yaml:"spawn_x" toml:"spawn_x"`
	SpawnY        float64 `yaml:"spawn_y" toml:"spawn_y"`
	Radius        float64 `yaml:"radius" toml:"radius"`
	AppearSpeed   float64 `yaml:"appear_speed" toml:"appear_speed"`     // Downward speed while appearing
	Gravity       float64 `yaml:"gravity" toml:"gravity"`               // Acceleration while appearing
	PlayLine      float64 `yaml:"play_line" toml:"play_line"`           // Fraction of display height that ends APPEAR
	ClimbSpeed    float64 `yaml:"climb_speed" toml:"climb_speed"`       // Upward speed while Up is held
	DropAccel     float64 `yaml:"drop_accel" toml:"drop_accel"`         // Acceleration while Down is held
	HaltThreshold float64 `yaml:"halt_threshold" toml:"halt_threshold"` // Fall speed that triggers a halt
	HaltDamping   float64 `yaml:"halt_damping" toml:"halt_damping"`
	HangDamping   float64 `yaml:"hang_damping" toml:"hang_damping"`
	DeadDriftX    float64 `yaml:"dead_drift_x" toml:"dead_drift_x"`
	DeadGravity   float64 `yaml:"dead_gravity" toml:"dead_gravity"`
	DeadSpin      float64 `yaml:"dead_spin" toml:"dead_spin"`
	ClimbAnim     float64 `yaml:"climb_anim" toml:"climb_anim"`
	HaltAnim      float64 `yaml:"halt_anim" toml:"halt_anim"`
	HangAnim      float64 `yaml:"hang_anim" toml:"hang_anim"`
}

// FanConfig defines the emitter on the right of the screen.
type FanConfig struct {
	X         float64 `yaml:"x" toml:"x"`
	Y         float64 `yaml:"y" toml:"y"`
	Speed     float64 `yaml:"speed" toml:"speed"`
	AnimSpeed float64 `yaml:"anim_speed" toml:"anim_speed"`
}

// ToolsConfig defines the deadly drivers and spanners.
type ToolsConfig struct {
	SpawnDie      int     `yaml:"spawn_die" toml:"spawn_die"`     // A roll of the highest face spawns a tool
	SpannerDie    int     `yaml:"spanner_die" toml:"spanner_die"` // A roll of 1 turns the tool into a spanner
	DriverRadius  float64 `yaml:"driver_radius" toml:"driver_radius"`
	DriverSpeed   float64 `yaml:"driver_speed" toml:"driver_speed"`
	DriftSpeed    float64 `yaml:"drift_speed" toml:"drift_speed"` // Vertical speed per drift step
	SpannerRadius float64 `yaml:"spanner_radius" toml:"spanner_radius"`
	SpannerSpeed  float64 `yaml:"spanner_speed" toml:"spanner_speed"`
	SpannerSpin   float64 `yaml:"spanner_spin" toml:"spanner_spin"`
}

// CoinsConfig defines collectable coins.
type CoinsConfig struct {
	SpawnDie int     `yaml:"spawn_die" toml:"spawn_die"` // A roll of 1 spawns a coin
	Radius   float64 `yaml:"radius" toml:"radius"`
	Speed    float64 `yaml:"speed" toml:"speed"`
	Spin     float64 `yaml:"spin" toml:"spin"`
}

// StarsConfig defines the burst shown when a coin is collected.
type StarsConfig struct {
	Count   int     `yaml:"count" toml:"count"`
	Speed   float64 `yaml:"speed" toml:"speed"`
	Spin    float64 `yaml:"spin" toml:"spin"`
	Gravity float64 `yaml:"gravity" toml:"gravity"`
}

// LasersConfig defines the player's shots.
type LasersConfig struct {
	OffsetX float64 `yaml:"offset_x" toml:"offset_x"`
	OffsetY float64 `yaml:"offset_y" toml:"offset_y"`
	Radius  float64 `yaml:"radius" toml:"radius"`
	Speed   float64 `yaml:"speed" toml:"speed"`
}

// ScoringConfig defines score changes.
type ScoringConfig struct {
	Coin        int `yaml:"coin" toml:"coin"`
	ToolHit     int `yaml:"tool_hit" toml:"tool_hit"`
	CoinPenalty int `yaml:"coin_penalty" toml:"coin_penalty"`
}

// FadeConfig defines how destroyed objects fade out.
type FadeConfig struct {
	Frames int     `yaml:"frames" toml:"frames"` // Fade steps before removal
	Rate   float64 `yaml:"rate" toml:"rate"`     // Fade steps per tick
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // 0.0 to 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to tool speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction" toml:"spawn_reduction"`   // Faces removed from the tool die at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means "keep the configured difficulty".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks values the simulation cannot run without.
func (c Agent8Config) Validate() error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %vx%v", c.Display.Width, c.Display.Height))
	}
	if c.Tools.SpawnDie < 1 || c.Tools.SpannerDie < 1 || c.Coins.SpawnDie < 1 {
		errs = append(errs, errors.New("spawn dice need at least one face"))
	}
	if c.Fade.Frames < 1 || c.Fade.Rate <= 0 {
		errs = append(errs, errors.New("fade needs at least one frame and a positive rate"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v outside 0..1", c.Audio.Volume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
