// Package gravity drops stars into the world from the upper left. Each star
// has one more point than the one before it, falls under gravity, bounces off
// the floor and is dropped once it has left through the right edge.
package gravity

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

	minPoints = 2
)

// goldenRatio is the outer to inner radius ratio of every star.
var goldenRatio = (3 + math.Sqrt(5)) / 2

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// starTag is the payload of every star.
type starTag struct {
	serial int
	points int
}

// Demo implements registry.Demo.
type Demo struct {
	runtime core.RuntimeConfig
	cfg     config.GravityConfig
	st      *stage.Stage

	nextPoints int
	spawned    int
	crossed    int
	sinceSpawn float64 // seconds since the last star

	paused bool
	state  core.DemoState
}

// New creates the gravity demo.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "gravity" }
func (d *Demo) Title() string { return "Gravity" }

// Reset empties the world and drops the first star.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.Close()
	d.runtime = runtime

	cfg, err := config.LoadGravity(configPath)
	if err != nil {
		cfg = config.DefaultGravityConfig()
	}
	d.cfg = cfg

	d.st = stage.New(WorldW, WorldH, runtime.Seed)
	d.nextPoints = max(minPoints, cfg.StartPoints)
	d.spawned = 0
	d.crossed = 0
	d.paused = false

	d.spawn()
	d.state = d.snapshot()
}

// spawn adds a star at the entry point moving right, with a random
// elasticity and its own gravity generator.
func (d *Demo) spawn() {
	cfg := d.cfg
	entry := geom.V(cfg.Entry.X, cfg.Entry.Y)
	shape := geom.Star(entry, cfg.Size, cfg.Size/goldenRatio, d.nextPoints)
	color := core.Palette[d.spawned%len(core.Palette)]

	star := physics.NewBodyWithPayload(shape, cfg.Mass, color, starTag{serial: d.spawned, points: d.nextPoints}, nil)
	star.SetVelocity(geom.V(cfg.Speed, 0))
	star.SetElasticity(d.st.Range(cfg.MinElasticity, cfg.MaxElasticity))
	star.SetPassiveRotation(cfg.Spin)

	d.st.Scene.AddBody(star)
	d.st.Scene.UniformGravity(cfg.Gravity, star, nil)

	d.spawned++
	d.nextPoints++
	if cfg.MaxPoints > 0 && d.nextPoints > cfg.MaxPoints {
		d.nextPoints = max(minPoints, cfg.StartPoints)
	}
	d.sinceSpawn = 0
}

// Step applies input and advances one tick.
func (d *Demo) Step(in core.InputFrame) core.DemoState {
	if in.Has(core.ActionRestart) {
		d.Reset(d.runtime)
		return d.state
	}
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if d.paused {
		d.state.Paused = true
		return d.state
	}

	dt := d.runtime.Dt()
	d.sinceSpawn += dt
	if in.Has(core.ActionFire) || d.sinceSpawn >= d.cfg.Interval {
		d.spawn()
	}

	d.bounceAndCull()
	d.st.Tick(dt)

	d.state = d.snapshot()
	return d.state
}

// bounceAndCull reflects stars that hit the floor while falling and removes
// the ones entirely past the right edge.
func (d *Demo) bounceAndCull() {
	sc := d.st.Scene
	for i := 0; i < sc.Len(); i++ {
		star := sc.BodyAt(i)
		if star.IsRemoved() {
			continue
		}
		lo, _ := star.Shape().Bounds()
		if v := star.Velocity(); lo.Y <= 0 && v.Y < 0 {
			star.SetVelocity(geom.V(v.X, -v.Y*star.Elasticity()))
		}
		if lo.X > WorldW {
			sc.RemoveBodyAt(i)
			d.crossed++
		}
	}
}

func (d *Demo) snapshot() core.DemoState {
	return d.st.State(core.DemoState{Score: d.crossed, Paused: d.paused})
}

// Render draws the stars and the HUD.
func (d *Demo) Render(dst *core.Screen) {
	if d.st == nil {
		return
	}
	d.st.Draw(dst, nil)
	stage.HUD(dst,
		fmt.Sprintf("GRAVITY  stars %d  crossed %d  next %d points", d.st.Scene.Len(), d.crossed, d.nextPoints),
		"space: drop star")
	if d.paused {
		stage.Banner(dst, core.ColorBrightYellow, "PAUSED")
	}
}

func (d *Demo) State() core.DemoState { return d.state }

// Close releases the scene.
func (d *Demo) Close() {
	d.st.Close()
	d.st = nil
}

func init() {
	registry.Register("gravity", func() registry.Demo { return New() })
}
