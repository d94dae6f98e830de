package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves the config for one demo.
// Search order: customPath -> ~/.polyarcade/configs/<name>.yaml ->
// ./configs/<name>.yaml -> embedded default -> fallback.
// Only an unreadable or invalid customPath is an error; broken files further
// down the chain are skipped.
func load[T any](name, customPath string, embedded []byte, fallback func() T) (T, error) {
	var cfg T

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	file := name + ".yaml"
	candidates := []string{filepath.Join("configs", file)}
	if p := userConfigPath(file); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var c T
		if err := yaml.Unmarshal(data, &c); err == nil {
			return c, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

// userConfigPath returns ~/.polyarcade/configs/<file>, or "" without a home.
func userConfigPath(file string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".polyarcade", "configs", file)
}

// LoadBounce loads the bounce demo config.
func LoadBounce(customPath string) (BounceConfig, error) {
	return load("bounce", customPath, defaultBounceYAML, DefaultBounceConfig)
}

// LoadNBodies loads the nbodies demo config.
func LoadNBodies(customPath string) (NBodiesConfig, error) {
	return load("nbodies", customPath, defaultNBodiesYAML, DefaultNBodiesConfig)
}

// LoadDamping loads the damping demo config.
func LoadDamping(customPath string) (DampingConfig, error) {
	return load("damping", customPath, defaultDampingYAML, DefaultDampingConfig)
}

// LoadGravity loads the gravity demo config.
func LoadGravity(customPath string) (GravityConfig, error) {
	return load("gravity", customPath, defaultGravityYAML, DefaultGravityConfig)
}

// LoadPacman loads the pacman demo config.
func LoadPacman(customPath string) (PacmanConfig, error) {
	return load("pacman", customPath, defaultPacmanYAML, DefaultPacmanConfig)
}

// LoadBreakout loads the breakout demo config.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// LoadInvaders loads the invaders demo config.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders", customPath, defaultInvadersYAML, DefaultInvadersConfig)
}

// LoadSwing loads the swing demo config.
func LoadSwing(customPath string) (SwingConfig, error) {
	return load("swing", customPath, defaultSwingYAML, DefaultSwingConfig)
}

// ApplyBreakoutPreset tunes a breakout config for a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width *= 1.3
		cfg.Physics.BallSpeedMin *= 0.8
		cfg.Physics.BallSpeedMax *= 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.75
		cfg.Physics.BallSpeedMin *= 1.25
		cfg.Physics.BallSpeedMax *= 1.25
	}
}

// ApplyInvadersPreset tunes an invaders config for a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.FireChance *= 0.5
		cfg.Physics.EnemySpeed *= 0.8
	case DifficultyHard:
		cfg.Enemies.FireChance *= 2
		cfg.Physics.EnemySpeed *= 1.3
	}
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
