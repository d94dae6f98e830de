package config

import (
	_ "embed"

	"github.com/vovakirdan/polyarcade/internal/core"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

//go:embed defaults/nbodies.yaml
var defaultNBodiesYAML []byte

//go:embed defaults/damping.yaml
var defaultDampingYAML []byte

//go:embed defaults/gravity.yaml
var defaultGravityYAML []byte

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/swing.yaml
var defaultSwingYAML []byte

// DefaultBounceConfig returns the default bounce configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Stars:      1,
		Points:     5,
		Radius:     50,
		Ratio:      2.3,
		Mass:       10,
		Speed:      1000,
		Spin:       2.4,
		Elasticity: 1,
		Colors:     []core.Color{core.ColorYellow, core.ColorCyan, core.ColorMagenta},
	}
}

// DefaultNBodiesConfig returns the default nbodies configuration.
func DefaultNBodiesConfig() NBodiesConfig {
	return NBodiesConfig{
		Bodies:  40,
		Sides:   4,
		MinMass: 50,
		MaxMass: 200,
		MinSize: 15,
		MaxSize: 40,
		G:       1000,
		Wrap:    true,
	}
}

// DefaultDampingConfig returns the default damping configuration.
func DefaultDampingConfig() DampingConfig {
	return DampingConfig{
		DotRadius:   8,
		DotMass:     6,
		MaxVelocity: 300,
		Spring:      20,
		Drag:        0.5,
		WaveFrac:    0.5,
	}
}

// DefaultGravityConfig returns the default gravity configuration.
func DefaultGravityConfig() GravityConfig {
	return GravityConfig{
		StartPoints:   2,
		MaxPoints:     12,
		Size:          50,
		Mass:          1000,
		Speed:         300,
		Spin:          4,
		Gravity:       2000,
		MinElasticity: 0.85,
		MaxElasticity: 1,
		Interval:      0.8,
		Entry:         Point{X: 0, Y: 400},
	}
}

// DefaultPacmanConfig returns the default pacman configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Radius:          50,
		Mass:            50,
		Speed:           400,
		Coast:           40,
		HoldTicks:       6,
		EatRatio:        0.9,
		PelletRadius:    5,
		StartPellets:    20,
		MaxPellets:      60,
		Interval:        2,
		PointsPerPellet: 10,
	}
}

// DefaultBreakoutConfig returns the default breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallRadius:   5,
			BallMass:     5,
			BallSpeedMin: 300,
			BallSpeedMax: 400,
			Elasticity:   1,
		},
		Paddle: BreakoutPaddle{
			Width:     130,
			Height:    30,
			Speed:     600,
			HoldTicks: 6,
		},
		Bricks: BreakoutBricks{
			Rows:    4,
			Cols:    12,
			Height:  30,
			Spacing: 5,
		},
		Gameplay: BreakoutGameplay{
			Lives:          3,
			PointsPerBrick: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 480,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Physics: InvadersPhysics{
			BulletSpeed: 400,
			BulletMass:  10,
			EnemySpeed:  200,
			EnemyMass:   10,
		},
		Enemies: InvadersEnemies{
			Cols:       8,
			Rows:       3,
			Radius:     25,
			Gap:        20,
			FireChance: 0.05,
			LoseHeight: 100,
		},
		Player: InvadersPlayer{
			Width:     60,
			Height:    25,
			Mass:      100,
			Speed:     500,
			HoldTicks: 6,
			Cooldown:  15,
		},
		Gameplay: InvadersGameplay{
			PointsPerEnemy: 10,
			WaveBonus:      100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				RateMultiplier:  1.5,
			},
		},
	}
}

// DefaultSwingConfig returns the default swing configuration with a single
// built-in level.
func DefaultSwingConfig() SwingConfig {
	return SwingConfig{
		Physics: SwingPhysics{
			Gravity:    3000,
			Friction:   30,
			Elasticity: 0.5,
		},
		Ball: SwingBall{
			Radius: 20,
			Mass:   50,
			Points: 12,
		},
		Tongue: SwingTongue{
			Speed:       1500,
			Stiffness:   3000,
			Cutoff:      300,
			CursorSpeed: 700,
		},
		Levels: []SwingLevel{
			{
				Name:       "first steps",
				Start:      Point{X: 80, Y: 260},
				Goal:       Point{X: 930, Y: 300},
				GoalRadius: 30,
				Platforms: []Block{
					{X: 80, Y: 200, W: 120, H: 20},
					{X: 330, Y: 430, W: 90, H: 30},
					{X: 600, Y: 440, W: 90, H: 30},
					{X: 930, Y: 240, W: 120, H: 20},
				},
				Lava: []Block{
					{X: 500, Y: 15, W: 1000, H: 30},
				},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a demo.
func GetDefaultYAML(demoID string) []byte {
	switch demoID {
	case "bounce":
		return defaultBounceYAML
	case "nbodies":
		return defaultNBodiesYAML
	case "damping":
		return defaultDampingYAML
	case "gravity":
		return defaultGravityYAML
	case "pacman":
		return defaultPacmanYAML
	case "breakout":
		return defaultBreakoutYAML
	case "invaders":
		return defaultInvadersYAML
	case "swing":
		return defaultSwingYAML
	default:
		return nil
	}
}
