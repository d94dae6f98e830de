// Package swing is a grappling ball platformer. The player aims a cursor,
// shoots a tongue that sticks to whatever it hits and swings on the leash
// toward the goal while avoiding lava.
package swing

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

	wallThick    = 1000.0
	cursorRadius = 15.0
	cursorSpin   = math.Pi / 4
	tipRadius    = 3.0
	anchorRadius = 5.0
	fallLimit    = -100.0
	holdTicks    = 6 // ticks a key press keeps the cursor moving
	levelPoints  = 1000
	minPoints    = 100
	pointsPerSec = 10
)

// Phase names.
const (
	PhasePlaying = "playing"
	PhaseLost    = "lost"
	PhaseWon     = "won"
	PhaseDone    = "done" // every level cleared
)

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// role tags what a body is.
type role int

const (
	roleWall role = iota
	rolePlatform
	roleLava
	roleGoal
	rolePlayer
	roleCursor
	roleTip
	roleAnchor
)

// tongue is the grappling line, either flying toward the cursor or stuck.
type tongue struct {
	end      *physics.Body // flying tip or frozen anchor
	attached bool
	leash    physics.ForceID
	follow   physics.ForceID // interaction enforcing the cutoff
}

// Demo implements registry.Demo.
type Demo struct {
	runtime core.RuntimeConfig
	cfg     config.SwingConfig
	st      *stage.Stage

	player *physics.Body
	cursor *physics.Body
	goal   *physics.Body
	solid  []*physics.Body // everything the ball and tongue can touch
	tongue *tongue

	level    int
	phase    string
	score    int
	holdDir  geom.Vector
	holdLeft int
	paused   bool
	state    core.DemoState
}

// New creates the swing demo.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "swing" }
func (d *Demo) Title() string { return "Swing" }

// Reset loads the config and starts the first level.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.runtime = runtime

	cfg, err := config.LoadSwing(configPath)
	if err != nil || len(cfg.Levels) == 0 {
		cfg = config.DefaultSwingConfig()
	}
	d.cfg = cfg
	d.score = 0
	d.loadLevel(0)
}

// Level returns the zero-based index of the current level.
func (d *Demo) Level() int { return d.level }

// loadLevel rebuilds the scene for level i.
func (d *Demo) loadLevel(i int) {
	d.Close()
	d.level = i
	d.phase = PhasePlaying
	d.paused = false
	d.holdLeft = 0
	d.tongue = nil
	d.solid = d.solid[:0]

	lvl := d.cfg.Levels[i]
	d.st = stage.New(WorldW, WorldH, d.runtime.Seed)
	scene := d.st.Scene

	walls := []geom.Polygon{
		geom.Rectangle(geom.V(-wallThick/2, WorldH/2), wallThick, WorldH+2*wallThick),
		geom.Rectangle(geom.V(WorldW+wallThick/2, WorldH/2), wallThick, WorldH+2*wallThick),
		geom.Rectangle(geom.V(WorldW/2, WorldH+wallThick/2), WorldW+2*wallThick, wallThick),
	}
	for _, w := range walls {
		d.addSolid(w, core.ColorGray, roleWall)
	}
	for _, p := range lvl.Platforms {
		d.addSolid(blockShape(p), core.ColorWhite, rolePlatform)
	}
	var lava []*physics.Body
	for _, l := range lvl.Lava {
		lava = append(lava, d.addSolid(blockShape(l), core.ColorBrightRed, roleLava))
	}
	d.goal = d.addSolid(geom.RegularPolygon(geom.V(lvl.Goal.X, lvl.Goal.Y), lvl.GoalRadius, 12),
		core.ColorBrightYellow, roleGoal)

	ball := d.cfg.Ball
	shape := geom.RegularPolygon(geom.V(lvl.Start.X, lvl.Start.Y), ball.Radius, ball.Points)
	shape.Rotate(math.Pi/float64(ball.Points), geom.V(lvl.Start.X, lvl.Start.Y))
	d.player = physics.NewBodyWithPayload(shape, ball.Mass, core.ColorBrightGreen, rolePlayer, nil)
	d.player.SetElasticity(d.cfg.Physics.Elasticity)
	scene.AddBody(d.player)

	d.cursor = physics.NewBodyWithPayload(
		geom.Star(geom.V(lvl.Goal.X, lvl.Goal.Y), cursorRadius, cursorRadius/3, 4),
		1, core.ColorBrightMagenta, roleCursor, nil)
	d.cursor.SetPassiveRotation(cursorSpin)
	scene.AddBody(d.cursor)

	scene.UniformGravity(d.cfg.Physics.Gravity, d.player, d.solid)
	for _, s := range d.solid {
		scene.ElasticCollision(d.cfg.Physics.Elasticity, s, d.player)
		scene.Collision(d.player, s, d.friction, nil)
	}
	for _, l := range lava {
		scene.HalfDestructiveCollision(l, d.player)
	}
	scene.HalfDestructiveCollision(d.player, d.goal)

	d.state = d.snapshot()
}

func (d *Demo) addSolid(shape geom.Polygon, c core.Color, r role) *physics.Body {
	b := physics.NewBodyWithPayload(shape, physics.Infinite, c, r, nil)
	d.st.Scene.AddBody(b)
	d.solid = append(d.solid, b)
	return b
}

func blockShape(b config.Block) geom.Polygon {
	center := geom.V(b.X, b.Y)
	p := geom.Rectangle(center, b.W, b.H)
	if b.Angle != 0 {
		p.Rotate(b.Angle, center)
	}
	return p
}

// friction slows the ball along a surface it has just landed on, in
// proportion to how much of its weight the surface carries.
func (d *Demo) friction(ball, _ *physics.Body, axis geom.Vector) {
	tangent := axis.Perp()
	weight := math.Abs(geom.V(0, -ball.Mass()).Dot(axis))
	slide := tangent.Scale(ball.Velocity().Dot(tangent))
	ball.AddForce(slide.Scale(-d.cfg.Physics.Friction * weight))
}

// shoot sends a tongue tip from the ball toward the cursor.
func (d *Demo) shoot() {
	from := d.player.Centroid()
	dir := d.cursor.Centroid().Sub(from).Normalize()
	if dir == geom.Zero {
		return
	}

	tip := physics.NewBodyWithPayload(geom.RegularPolygon(from, tipRadius, 3),
		physics.Infinite, core.ColorBrightMagenta, roleTip, nil)
	tip.SetVelocity(dir.Scale(d.cfg.Tongue.Speed))
	d.st.Scene.AddBody(tip)

	t := &tongue{end: tip}
	t.follow = d.st.Scene.Interaction(d.player, tip, d.enforceCutoff, nil)
	for _, s := range d.solid {
		d.st.Scene.Collision(tip, s, d.stick, nil)
	}
	d.tongue = t
}

// stick freezes a flying tip where it hit and leashes the ball to it. A tip
// that lands on the goal leashes straight to the goal.
func (d *Demo) stick(tip, hit *physics.Body, _ geom.Vector) {
	t := d.tongue
	if t == nil || t.end != tip || t.attached {
		return
	}

	anchor := d.goal
	if hit != d.goal {
		if hit.Payload() == roleWall {
			d.release()
			return
		}
		anchor = physics.NewBodyWithPayload(geom.RegularPolygon(tip.Centroid(), anchorRadius, 8),
			physics.Infinite, core.ColorBrightMagenta, roleAnchor, nil)
		d.st.Scene.AddBody(anchor)
	}
	tip.Remove()

	t.end = anchor
	t.attached = true
	t.leash = d.st.Scene.Leash(d.cfg.Tongue.Stiffness, d.player, anchor, d.solid)
	t.follow = d.st.Scene.Interaction(d.player, anchor, d.enforceCutoff, nil)
}

// enforceCutoff lets go of the tongue once it is stretched past the cutoff
// or its end leaves the world.
func (d *Demo) enforceCutoff(ball, end *physics.Body, _ physics.Collision) {
	t := d.tongue
	if t == nil || t.end != end {
		return
	}
	if ball.Centroid().Distance(end.Centroid()) > d.cfg.Tongue.Cutoff || !d.st.Contains(end.Centroid(), 0) {
		d.release()
	}
}

// release drops the tongue and every generator it owns.
func (d *Demo) release() {
	t := d.tongue
	if t == nil {
		return
	}
	d.tongue = nil
	d.st.Scene.RemoveForce(t.follow)
	if t.attached {
		d.st.Scene.RemoveForce(t.leash)
	}
	if t.end != d.goal {
		t.end.Remove()
	}
}

// Step applies input and advances one tick.
func (d *Demo) Step(in core.InputFrame) core.DemoState {
	switch d.phase {
	case PhaseLost:
		if in.Has(core.ActionRestart) {
			d.loadLevel(d.level)
		}
		return d.state
	case PhaseWon:
		if in.Has(core.ActionRestart) {
			d.loadLevel(d.level)
		} else if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			d.loadLevel(d.level + 1)
		}
		return d.state
	case PhaseDone:
		if in.Has(core.ActionRestart) {
			d.Reset(d.runtime)
		}
		return d.state
	}

	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}

	d.steerCursor(in)
	if d.paused {
		d.st.Scene.TickOnly(d.runtime.Dt(), func(b *physics.Body) bool { return b == d.cursor })
		d.clampCursor()
		d.state = d.snapshot()
		return d.state
	}

	if in.Has(core.ActionFire) {
		if d.tongue != nil {
			d.release()
		} else {
			d.shoot()
		}
	}

	d.st.Tick(d.runtime.Dt())
	d.clampCursor()

	switch {
	case d.goal.IsRemoved():
		d.score += levelBonus(float64(d.st.Ticks) * d.runtime.Dt())
		d.phase = PhaseWon
		if d.level+1 >= len(d.cfg.Levels) {
			d.phase = PhaseDone
		}
	case d.player.IsRemoved() || d.player.Centroid().Y < fallLimit:
		d.phase = PhaseLost
	}

	d.state = d.snapshot()
	return d.state
}

// levelBonus rewards finishing a level quickly.
func levelBonus(seconds float64) int {
	return max(minPoints, levelPoints-int(seconds*pointsPerSec))
}

func (d *Demo) steerCursor(in core.InputFrame) {
	var dir geom.Vector
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}
	if in.Has(core.ActionUp) {
		dir.Y++
	}
	if in.Has(core.ActionDown) {
		dir.Y--
	}
	if dir != geom.Zero {
		d.holdDir, d.holdLeft = dir.Normalize(), holdTicks
	}

	if d.holdLeft > 0 {
		d.holdLeft--
		d.cursor.SetVelocity(d.holdDir.Scale(d.cfg.Tongue.CursorSpeed))
	} else {
		d.cursor.SetVelocity(geom.Zero)
	}
}

func (d *Demo) clampCursor() {
	c := d.cursor.Centroid()
	clamped := geom.V(core.ClampF(c.X, 0, WorldW), core.ClampF(c.Y, 0, WorldH))
	if clamped != c {
		d.cursor.SetCentroid(clamped)
	}
}

func (d *Demo) snapshot() core.DemoState {
	lives := 1
	if d.phase == PhaseLost {
		lives = 0
	}
	return d.st.State(core.DemoState{
		Score:  d.score,
		Lives:  lives,
		Over:   d.phase == PhaseLost || d.phase == PhaseDone,
		Won:    d.phase == PhaseWon || d.phase == PhaseDone,
		Paused: d.paused,
	})
}

// Render draws the level, the tongue and the overlays.
func (d *Demo) Render(dst *core.Screen) {
	if d.st == nil {
		return
	}
	vp := d.st.Viewport(dst)
	if t := d.tongue; t != nil && !d.player.IsRemoved() {
		vp.DrawLine(dst, d.player.Centroid(), t.end.Centroid(), '·', core.ColorMagenta)
	}
	d.st.Draw(dst, func(b *physics.Body) rune {
		switch b.Payload() {
		case roleWall:
			return 0
		case rolePlatform:
			return '▓'
		case roleLava:
			return '≈'
		case roleGoal:
			return '◎'
		case rolePlayer:
			return '●'
		case roleCursor:
			return '+'
		default:
			return '•'
		}
	})

	stage.HUD(dst,
		fmt.Sprintf("SWING  level %d/%d %s  score %d", d.level+1, len(d.cfg.Levels), d.cfg.Levels[d.level].Name, d.score),
		"arrows: aim  space: tongue")

	switch {
	case d.phase == PhaseLost:
		stage.Banner(dst, core.ColorBrightRed, "YOU DIED", "r: replay level")
	case d.phase == PhaseWon:
		stage.Banner(dst, core.ColorBrightGreen, "LEVEL COMPLETE", "enter: next level   r: replay")
	case d.phase == PhaseDone:
		stage.Banner(dst, core.ColorBrightGreen, "ALL LEVELS CLEARED", fmt.Sprintf("score %d", d.score), "r: start over")
	case d.paused:
		stage.Banner(dst, core.ColorBrightYellow, "PAUSED")
	}
}

func (d *Demo) State() core.DemoState { return d.state }

// Close releases the scene.
func (d *Demo) Close() {
	d.tongue = nil
	d.st.Close()
	d.st = nil
}

func init() {
	registry.Register("swing", func() registry.Demo { return New() })
}
