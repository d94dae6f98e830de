// Package config loads YAML settings for the physics demos and manages the
// score-driven difficulty curve shared by the arcade-style demos.
package config

import "github.com/vovakirdan/polyarcade/internal/core"

// Point is a world position in a YAML file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Block is a rectangle in world units, optionally rotated about its center.
type Block struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Angle float64 `yaml:"angle"` // radians
}

// BounceConfig configures the bouncing stars demo.
type BounceConfig struct {
	Stars      int          `yaml:"stars"`
	Points     int          `yaml:"points"`
	Radius     float64      `yaml:"radius"`
	Ratio      float64      `yaml:"ratio"` // outer radius / inner radius
	Mass       float64      `yaml:"mass"`
	Speed      float64      `yaml:"speed"`
	Spin       float64      `yaml:"spin"` // radians per second
	Elasticity float64      `yaml:"elasticity"`
	Colors     []core.Color `yaml:"colors"`
}

// NBodiesConfig configures the gravitating polygons demo.
type NBodiesConfig struct {
	Bodies  int     `yaml:"bodies"`
	Sides   int     `yaml:"sides"`
	MinMass float64 `yaml:"min_mass"`
	MaxMass float64 `yaml:"max_mass"`
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
	G       float64 `yaml:"g"`
	Wrap    bool    `yaml:"wrap"` // wrap bodies around the world edges
}

// DampingConfig configures the damped springs demo.
type DampingConfig struct {
	DotRadius   float64 `yaml:"dot_radius"`
	DotMass     float64 `yaml:"dot_mass"`
	MaxVelocity float64 `yaml:"max_velocity"`
	Spring      float64 `yaml:"spring"`
	Drag        float64 `yaml:"drag"`
	WaveFrac    float64 `yaml:"wave_fraction"` // fraction of a cosine period across the row
}

// GravityConfig configures the falling stars demo.
type GravityConfig struct {
	StartPoints   int     `yaml:"start_points"` // points of the first star; each later star has one more
	MaxPoints     int     `yaml:"max_points"`   // the count starts over after this
	Size          float64 `yaml:"size"`         // outer radius
	Mass          float64 `yaml:"mass"`
	Speed         float64 `yaml:"speed"`
	Spin          float64 `yaml:"spin"` // radians per second
	Gravity       float64 `yaml:"gravity"`
	MinElasticity float64 `yaml:"min_elasticity"`
	MaxElasticity float64 `yaml:"max_elasticity"`
	Interval      float64 `yaml:"interval"` // seconds between stars
	Entry         Point   `yaml:"entry"`
}

// PacmanConfig configures the pellet eating demo.
type PacmanConfig struct {
	Radius          float64 `yaml:"radius"`
	Mass            float64 `yaml:"mass"`
	Speed           float64 `yaml:"speed"` // while a direction key is held
	Coast           float64 `yaml:"coast"` // after the key is let go
	HoldTicks       int     `yaml:"hold_ticks"`
	EatRatio        float64 `yaml:"eat_ratio"` // fraction of the summed radii that counts as eaten
	PelletRadius    float64 `yaml:"pellet_radius"`
	StartPellets    int     `yaml:"start_pellets"`
	MaxPellets      int     `yaml:"max_pellets"`
	Interval        float64 `yaml:"interval"` // seconds between new pellets
	PointsPerPellet int     `yaml:"points_per_pellet"`
}

// BreakoutConfig configures the brick breaker demo.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

type BreakoutPhysics struct {
	BallRadius   float64 `yaml:"ball_radius"`
	BallMass     float64 `yaml:"ball_mass"`
	BallSpeedMin float64 `yaml:"ball_speed_min"`
	BallSpeedMax float64 `yaml:"ball_speed_max"`
	Elasticity   float64 `yaml:"elasticity"`
}

type BreakoutPaddle struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	HoldTicks int     `yaml:"hold_ticks"` // ticks a key press keeps the paddle moving
}

type BreakoutBricks struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
}

type BreakoutGameplay struct {
	Lives          int `yaml:"lives"`
	PointsPerBrick int `yaml:"points_per_brick"`
}

// InvadersConfig configures the space invaders demo.
type InvadersConfig struct {
	Physics    InvadersPhysics  `yaml:"physics"`
	Enemies    InvadersEnemies  `yaml:"enemies"`
	Player     InvadersPlayer   `yaml:"player"`
	Gameplay   InvadersGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

type InvadersPhysics struct {
	BulletSpeed float64 `yaml:"bullet_speed"`
	BulletMass  float64 `yaml:"bullet_mass"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	EnemyMass   float64 `yaml:"enemy_mass"`
}

type InvadersEnemies struct {
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	Radius     float64 `yaml:"radius"`
	Gap        float64 `yaml:"gap"`
	FireChance float64 `yaml:"fire_chance"` // per enemy, per second
	LoseHeight float64 `yaml:"lose_height"`
}

type InvadersPlayer struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Mass      float64 `yaml:"mass"`
	Speed     float64 `yaml:"speed"`
	HoldTicks int     `yaml:"hold_ticks"`
	Cooldown  int     `yaml:"cooldown"` // ticks between shots
}

type InvadersGameplay struct {
	PointsPerEnemy int `yaml:"points_per_enemy"`
	WaveBonus      int `yaml:"wave_bonus"`
}

// SwingConfig configures the grappling ball demo.
type SwingConfig struct {
	Physics SwingPhysics `yaml:"physics"`
	Ball    SwingBall    `yaml:"ball"`
	Tongue  SwingTongue  `yaml:"tongue"`
	Levels  []SwingLevel `yaml:"levels"`
}

type SwingPhysics struct {
	Gravity    float64 `yaml:"gravity"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

type SwingBall struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Points int     `yaml:"points"`
}

type SwingTongue struct {
	Speed       float64 `yaml:"speed"`
	Stiffness   float64 `yaml:"stiffness"`
	Cutoff      float64 `yaml:"cutoff"` // leash snaps beyond this length
	CursorSpeed float64 `yaml:"cursor_speed"`
}

// SwingLevel is one stage of the swing demo.
type SwingLevel struct {
	Name       string  `yaml:"name"`
	Start      Point   `yaml:"start"`
	Goal       Point   `yaml:"goal"`
	GoalRadius float64 `yaml:"goal_radius"`
	Platforms  []Block `yaml:"platforms"`
	Lava       []Block `yaml:"lava"`
}
