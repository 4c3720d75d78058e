package config

import (
	_ "embed"
)

//go:embed defaults/agent8.yaml
var defaultAgent8YAML []byte

// DefaultAgent8Config returns the default Agent8 configuration.
// These values give the classic tuning at 60 FPS.
func DefaultAgent8Config() Agent8Config {
	return Agent8Config{
		Display: DisplayConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			SpawnX:        115,
			SpawnY:        0,
			Radius:        50,
			AppearSpeed:   12,
			Gravity:       0.5,
			PlayLine:      1.0 / 3.0,
			ClimbSpeed:    4,
			DropAccel:     1,
			HaltThreshold: 5,
			HaltDamping:   0.9,
			HangDamping:   0.5,
			DeadDriftX:    -0.3,
			DeadGravity:   0.5,
			DeadSpin:      0.25,
			ClimbAnim:     0.25,
			HaltAnim:      0.333,
			HangAnim:      0.02,
		},
		Fan: FanConfig{
			X:         1140,
			Y:         217,
			Speed:     3,
			AnimSpeed: 1,
		},
		Tools: ToolsConfig{
			SpawnDie:      50,
			SpannerDie:    2,
			DriverRadius:  50,
			DriverSpeed:   8,
			DriftSpeed:    6,
			SpannerRadius: 100,
			SpannerSpeed:  4,
			SpannerSpin:   0.1,
		},
		Coins: CoinsConfig{
			SpawnDie: 150,
			Radius:   40,
			Speed:    3,
			Spin:     0.1,
		},
		Stars: StarsConfig{
			Count:   4,
			Speed:   16,
			Spin:    0.1,
			Gravity: 0.5,
		},
		Lasers: LasersConfig{
			OffsetX: 155,
			OffsetY: -75,
			Radius:  30,
			Speed:   32,
		},
		Scoring: ScoringConfig{
			Coin:        500,
			ToolHit:     100,
			CoinPenalty: 300,
		},
		Fade: FadeConfig{
			Frames: 10,
			Rate:   1,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressNone,
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  30,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAgent8YAML
}
