// Package breakout is brick breaker played on the physics scene: the ball
// bounces with elastic collisions, bricks vanish through half-destructive
// collisions and score through their release callback.
package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/polyarcade/internal/config"
	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/demos/stage"
	"github.com/vovakirdan/polyarcade/internal/geom"
	"github.com/vovakirdan/polyarcade/internal/physics"
	"github.com/vovakirdan/polyarcade/internal/registry"
)

const (
	WorldW = 1000.0
	WorldH = 500.0

	paddleY    = 20.0 // bottom edge of the paddle
	ballPoints = 15
	wallThick  = 1000.0
	brickTop   = WorldH - 40
)

// Phase names, reported in the HUD.
const (
	PhaseServe    = "serve"
	PhasePlaying  = "playing"
	PhaseGameOver = "gameover"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		p = ""
	}
	difficultyPreset = p
}

// role tags what a body is.
type role int

const (
	roleWall role = iota
	rolePaddle
	roleBall
	roleBrick
)

// Demo implements registry.Demo.
type Demo struct {
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	st         *stage.Stage

	paddle *physics.Body
	ball   *physics.Body
	walls  []*physics.Body
	bricks []*physics.Body

	phase    string
	score    int
	lives    int
	wave     int
	holdDir  float64
	holdLeft int
	paused   bool
	state    core.DemoState
}

// New creates the breakout demo.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "breakout" }
func (d *Demo) Title() string { return "Breakout" }

// Reset builds the walls, the paddle and the first wave of bricks.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.Close()
	d.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	d.cfg = cfg
	d.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	d.st = stage.New(WorldW, WorldH, runtime.Seed)
	d.score = 0
	d.lives = cfg.Gameplay.Lives
	d.wave = 0
	d.holdDir, d.holdLeft = 0, 0
	d.paused = false

	d.buildWalls()
	d.paddle = physics.NewBodyWithPayload(
		geom.Rectangle(geom.V(WorldW/2, paddleY+cfg.Paddle.Height/2), cfg.Paddle.Width, cfg.Paddle.Height),
		physics.Infinite, core.ColorBrightWhite, rolePaddle, nil)
	d.st.Scene.AddBody(d.paddle)

	d.buildBricks()
	d.serve()
	d.state = d.snapshot()
}

// buildWalls surrounds the world on the left, right and top with immovable
// slabs. The bottom stays open.
func (d *Demo) buildWalls() {
	d.walls = d.walls[:0]
	slabs := []geom.Polygon{
		geom.Rectangle(geom.V(-wallThick/2, WorldH/2), wallThick, WorldH+2*wallThick),
		geom.Rectangle(geom.V(WorldW+wallThick/2, WorldH/2), wallThick, WorldH+2*wallThick),
		geom.Rectangle(geom.V(WorldW/2, WorldH+wallThick/2), WorldW+2*wallThick, wallThick),
	}
	for _, shape := range slabs {
		w := physics.NewBodyWithPayload(shape, physics.Infinite, core.ColorGray, roleWall, nil)
		d.st.Scene.AddBody(w)
		d.walls = append(d.walls, w)
	}
}

// buildBricks lays out a fresh wave. Each brick scores when the scene
// releases it after the ball knocks it out.
func (d *Demo) buildBricks() {
	b := d.cfg.Bricks
	width := (WorldW - float64(b.Cols+1)*b.Spacing) / float64(b.Cols)

	d.bricks = d.bricks[:0]
	for row := 0; row < b.Rows; row++ {
		y := brickTop - float64(row)*(b.Height+b.Spacing) - b.Height/2
		color := core.Palette[row%len(core.Palette)]
		for col := 0; col < b.Cols; col++ {
			x := b.Spacing + float64(col)*(width+b.Spacing) + width/2
			brick := physics.NewBodyWithPayload(
				geom.Rectangle(geom.V(x, y), width, b.Height),
				physics.Infinite, color, roleBrick, d.brickReleased)
			d.st.Scene.AddBody(brick)
			d.bricks = append(d.bricks, brick)
		}
	}
	if d.ball != nil && !d.ball.IsRemoved() {
		d.bindBricks(d.ball)
	}
}

func (d *Demo) brickReleased(any) {
	if d.phase == PhaseGameOver {
		return
	}
	d.score += d.cfg.Gameplay.PointsPerBrick
}

// serve puts a fresh ball on the paddle and binds its collisions.
func (d *Demo) serve() {
	p := d.cfg.Physics
	ball := physics.NewBodyWithPayload(
		geom.RegularPolygon(d.servePoint(), p.BallRadius, ballPoints),
		p.BallMass, core.ColorBrightYellow, roleBall, nil)
	ball.SetElasticity(p.Elasticity)
	d.st.Scene.AddBody(ball)

	for _, w := range d.walls {
		d.st.Scene.ElasticCollision(p.Elasticity, w, ball)
	}
	d.st.Scene.ElasticCollision(p.Elasticity, d.paddle, ball)
	d.bindBricks(ball)

	d.ball = ball
	d.phase = PhaseServe
}

func (d *Demo) bindBricks(ball *physics.Body) {
	for _, brick := range d.bricks {
		if brick.IsRemoved() {
			continue
		}
		d.st.Scene.ElasticCollision(d.cfg.Physics.Elasticity, brick, ball)
		d.st.Scene.HalfDestructiveCollision(ball, brick)
	}
}

func (d *Demo) servePoint() geom.Vector {
	c := d.paddle.Centroid()
	return geom.V(c.X, paddleY+d.cfg.Paddle.Height+d.cfg.Physics.BallRadius+1)
}

// launch sends the ball upward at a random angle between 60 and 120
// degrees.
func (d *Demo) launch() {
	p := d.cfg.Physics
	speed := d.st.Range(p.BallSpeedMin, p.BallSpeedMax)
	speed = d.difficulty.Speed(speed, d.score, d.st.Ticks)
	angle := d.st.Range(math.Pi/3, 2*math.Pi/3)
	d.ball.SetVelocity(geom.FromAngle(angle, speed))
	d.phase = PhasePlaying
}

// Step applies input and advances one tick.
func (d *Demo) Step(in core.InputFrame) core.DemoState {
	if in.Has(core.ActionRestart) && d.phase == PhaseGameOver {
		d.Reset(d.runtime)
		return d.state
	}
	if in.Has(core.ActionPause) && d.phase != PhaseGameOver {
		d.paused = !d.paused
	}
	if d.paused || d.phase == PhaseGameOver {
		d.state = d.snapshot()
		return d.state
	}

	d.steerPaddle(in)
	if d.phase == PhaseServe {
		d.ball.SetCentroid(d.servePoint())
		if in.Has(core.ActionFire) {
			d.launch()
		}
	}

	d.st.Tick(d.runtime.Dt())
	d.clampPaddle()

	if d.ball.Centroid().Y < -4*d.cfg.Physics.BallRadius {
		d.ball.Remove()
		d.lives--
		if d.lives <= 0 {
			d.phase = PhaseGameOver
		} else {
			d.serve()
		}
	}

	if d.phase != PhaseGameOver && d.bricksLeft() == 0 {
		d.wave++
		d.buildBricks()
	}

	d.state = d.snapshot()
	return d.state
}

// steerPaddle turns key presses into a paddle velocity that lasts for
// HoldTicks ticks, since terminals report presses but not releases.
func (d *Demo) steerPaddle(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		d.holdDir, d.holdLeft = -1, d.cfg.Paddle.HoldTicks
	case in.Has(core.ActionRight):
		d.holdDir, d.holdLeft = 1, d.cfg.Paddle.HoldTicks
	}

	if d.holdLeft > 0 {
		d.holdLeft--
		d.paddle.SetVelocity(geom.V(d.holdDir*d.cfg.Paddle.Speed, 0))
	} else {
		d.paddle.SetVelocity(geom.Zero)
	}
}

func (d *Demo) clampPaddle() {
	c := d.paddle.Centroid()
	half := d.cfg.Paddle.Width / 2
	x := core.ClampF(c.X, half, WorldW-half)
	if x != c.X {
		d.paddle.SetCentroid(geom.V(x, c.Y))
		d.paddle.SetVelocity(geom.Zero)
		d.holdLeft = 0
	}
}

func (d *Demo) bricksLeft() int {
	n := 0
	for _, b := range d.bricks {
		if !b.IsRemoved() {
			n++
		}
	}
	return n
}

func (d *Demo) snapshot() core.DemoState {
	return d.st.State(core.DemoState{
		Score:  d.score,
		Lives:  d.lives,
		Over:   d.phase == PhaseGameOver,
		Paused: d.paused,
	})
}

// Render draws the scene, hiding the off-screen walls.
func (d *Demo) Render(dst *core.Screen) {
	if d.st == nil {
		return
	}
	d.st.Draw(dst, func(b *physics.Body) rune {
		switch b.Payload() {
		case roleWall:
			return 0
		case roleBall:
			return '●'
		case rolePaddle:
			return '▀'
		default:
			return stage.Fill
		}
	})

	stage.HUD(dst,
		fmt.Sprintf("BREAKOUT  score %d  lives %d  wave %d", d.score, d.lives, d.wave+1),
		stage.Counters(d.state))

	switch {
	case d.phase == PhaseGameOver:
		stage.Banner(dst, core.ColorBrightRed, "GAME OVER", fmt.Sprintf("score %d", d.score), "r: restart")
	case d.paused:
		stage.Banner(dst, core.ColorBrightYellow, "PAUSED")
	case d.phase == PhaseServe:
		stage.Banner(dst, core.ColorWhite, "space: launch")
	}
}

func (d *Demo) State() core.DemoState { return d.state }

// Close releases the scene.
func (d *Demo) Close() {
	d.phase = PhaseGameOver
	d.st.Close()
	d.st = nil
	d.ball = nil
}

func init() {
	registry.Register("breakout", func() registry.Demo { return New() })
}
