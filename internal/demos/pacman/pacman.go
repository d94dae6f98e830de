// Package pacman steers a chomping wedge around a wrapping world. Pellets
// appear every few seconds and are eaten once they come within reach of the
// wedge's center.
package pacman

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

	arcPoints   = 20
	pelletSides = 12
)

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// role tags what a body is.
type role int

const (
	rolePacman role = iota
	rolePellet
)

// Demo implements registry.Demo.
type Demo struct {
	runtime core.RuntimeConfig
	cfg     config.PacmanConfig
	st      *stage.Stage

	pacman   *physics.Body
	heading  geom.Vector
	holdLeft int

	pellets     int
	sincePellet float64
	score       int

	paused bool
	state  core.DemoState
}

// New creates the pacman demo.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "pacman" }
func (d *Demo) Title() string { return "Pac-Man" }

// Reset loads the config and starts a fresh world.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.runtime = runtime

	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		cfg = config.DefaultPacmanConfig()
	}
	d.cfg = cfg
	d.start()
}

// start rebuilds the world from the current config.
func (d *Demo) start() {
	d.Close()
	d.st = stage.New(WorldW, WorldH, d.runtime.Seed)
	d.heading = geom.Zero
	d.holdLeft = 0
	d.pellets = 0
	d.sincePellet = 0
	d.score = 0
	d.paused = false

	center := geom.V(WorldW/2, WorldH/2)
	d.pacman = physics.NewBodyWithPayload(wedge(center, d.cfg.Radius), d.cfg.Mass, core.ColorBrightYellow, rolePacman, nil)
	d.st.Scene.AddBody(d.pacman)

	for i := 0; i < d.cfg.StartPellets; i++ {
		d.addPellet()
	}
	d.state = d.snapshot()
}

// wedge is a circle of the given radius with a 60 degree mouth facing +X.
func wedge(center geom.Vector, radius float64) geom.Polygon {
	p := make(geom.Polygon, 0, arcPoints+1)
	for i := 0; i < arcPoints; i++ {
		angle := 5.0/3.0*math.Pi*float64(i)/arcPoints + math.Pi/6
		p = append(p, center.Add(geom.FromAngle(angle, radius)))
	}
	return append(p, center)
}

// addPellet drops a pellet at a random spot unless the world is full.
func (d *Demo) addPellet() {
	if d.cfg.MaxPellets > 0 && d.pellets >= d.cfg.MaxPellets {
		return
	}
	r := d.cfg.PelletRadius
	d.addPelletAt(geom.V(d.st.Range(r, WorldW-r), d.st.Range(r, WorldH-r)))
}

func (d *Demo) addPelletAt(pos geom.Vector) *physics.Body {
	shape := geom.RegularPolygon(pos, d.cfg.PelletRadius, pelletSides)
	p := physics.NewBodyWithPayload(shape, physics.Infinite, core.ColorWhite, rolePellet, nil)
	d.st.Scene.AddBody(p)
	d.pellets++
	return p
}

// Step applies input and advances one tick.
func (d *Demo) Step(in core.InputFrame) core.DemoState {
	if in.Has(core.ActionRestart) {
		d.start()
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
	d.sincePellet += dt
	if d.sincePellet >= d.cfg.Interval {
		d.addPellet()
		d.sincePellet = 0
	}

	d.steer(in)
	d.eat()
	d.st.Wrap(d.pacman)
	d.st.Tick(dt)

	d.state = d.snapshot()
	return d.state
}

// steer turns the wedge toward the pressed direction. It moves at full speed
// for HoldTicks after a press and coasts in the same direction afterwards.
func (d *Demo) steer(in core.InputFrame) {
	dirs := []struct {
		action core.Action
		angle  float64
	}{
		{core.ActionRight, 0},
		{core.ActionUp, math.Pi / 2},
		{core.ActionLeft, math.Pi},
		{core.ActionDown, 3 * math.Pi / 2},
	}
	for _, dir := range dirs {
		if in.Has(dir.action) {
			d.heading = geom.FromAngle(dir.angle, 1)
			d.pacman.SetRotation(dir.angle)
			d.holdLeft = d.cfg.HoldTicks
		}
	}

	switch {
	case d.holdLeft > 0:
		d.pacman.SetVelocity(d.heading.Scale(d.cfg.Speed))
		d.holdLeft--
	case d.heading != geom.Zero:
		d.pacman.SetVelocity(d.heading.Scale(d.cfg.Coast))
	}
}

// eat removes every pellet whose center is within reach of the wedge.
func (d *Demo) eat() {
	reach := d.cfg.EatRatio * (d.cfg.Radius + d.cfg.PelletRadius)
	center := d.pacman.Centroid()
	sc := d.st.Scene
	edible := func(b *physics.Body) bool {
		return !b.IsRemoved() && b.Payload() == rolePellet && b.Centroid().Distance(center) < reach
	}
	for {
		p, ok := sc.Find(edible)
		if !ok {
			return
		}
		sc.RemoveBodyAt(sc.IndexOf(p))
		d.pellets--
		d.score += d.cfg.PointsPerPellet
	}
}

func (d *Demo) snapshot() core.DemoState {
	return d.st.State(core.DemoState{Score: d.score, Paused: d.paused})
}

// Render draws the wedge, the pellets and the HUD.
func (d *Demo) Render(dst *core.Screen) {
	if d.st == nil {
		return
	}
	d.st.Draw(dst, func(b *physics.Body) rune {
		if b.Payload() == rolePellet {
			return '•'
		}
		return stage.Fill
	})
	stage.HUD(dst, fmt.Sprintf("PAC-MAN  score %d  pellets %d", d.score, d.pellets), "arrows: steer")
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
	registry.Register("pacman", func() registry.Demo { return New() })
}
