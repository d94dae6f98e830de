package config

import (
	"fmt"
	"math"
)

// DifficultyConfig describes how a demo gets harder as it goes on.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0 = easy, 1 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig says what drives the level up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time" or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which the level reaches 1
}

// ScalingConfig sets how much the level changes things at its maximum.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to 1 at level 1
	RateMultiplier  float64 `yaml:"rate_multiplier"`  // added to 1 at level 1
}

// DifficultyPreset is a named starting point for difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the starting level of a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0
	}
}

// IsFixedPreset reports whether the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// DifficultyManager turns score and elapsed ticks into tuning values.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, initialLevel: clampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current level in [0, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0, 1)

	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed scales base by up to 1+SpeedMultiplier.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Rate scales a probability or frequency by up to 1+RateMultiplier, capped
// at 1.
func (d *DifficultyManager) Rate(base float64, score, ticks int) float64 {
	return math.Min(1, base*(1+d.Level(score, ticks)*d.cfg.Scaling.RateMultiplier))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
