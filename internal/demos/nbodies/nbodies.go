// Package nbodies scatters four-pointed stars across the world and lets
// Newtonian gravity between every pair pull them together.
package nbodies

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
)

// goldenRatio is the outer to inner radius ratio of every star.
var goldenRatio = (3 + math.Sqrt(5)) / 2

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Demo implements registry.Demo.
type Demo struct {
	runtime core.RuntimeConfig
	cfg     config.NBodiesConfig
	st      *stage.Stage
	paused  bool
	state   core.DemoState
}

// New creates the n-bodies demo.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "nbodies" }
func (d *Demo) Title() string { return "N-Bodies" }

// Reset scatters the bodies and binds gravity between every pair.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.Close()
	d.runtime = runtime

	cfg, err := config.LoadNBodies(configPath)
	if err != nil {
		cfg = config.DefaultNBodiesConfig()
	}
	d.cfg = cfg
	d.paused = false

	d.st = stage.New(WorldW, WorldH, runtime.Seed)
	scene := d.st.Scene

	for i := 0; i < cfg.Bodies; i++ {
		center := geom.V(d.st.Range(0, WorldW), d.st.Range(0, WorldH))
		size := d.st.Range(cfg.MinSize, cfg.MaxSize)
		mass := d.st.Range(cfg.MinMass, cfg.MaxMass)
		color := core.Palette[d.st.Rand.Intn(len(core.Palette))]
		scene.AddBody(physics.NewBody(geom.Star(center, size, size/goldenRatio, cfg.Sides), mass, color))
	}

	for i := 0; i < scene.Len(); i++ {
		for j := i + 1; j < scene.Len(); j++ {
			scene.NewtonianGravity(cfg.G, scene.BodyAt(i), scene.BodyAt(j))
		}
	}
	d.state = d.st.State(core.DemoState{})
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

	d.st.Tick(d.runtime.Dt())
	if d.cfg.Wrap {
		for _, b := range d.st.Scene.Bodies() {
			d.st.Wrap(b)
		}
	}

	d.state = d.st.State(core.DemoState{})
	return d.state
}

// Energy returns the total kinetic energy of the bodies.
func (d *Demo) Energy() float64 {
	return physics.Kinetic(d.st.Scene.Bodies())
}

// Render draws the bodies and the HUD.
func (d *Demo) Render(dst *core.Screen) {
	if d.st == nil {
		return
	}
	d.st.Draw(dst, nil)
	stage.HUD(dst,
		fmt.Sprintf("N-BODIES  G=%g  KE %.0f", d.cfg.G, d.Energy()),
		stage.Counters(d.state))
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
	registry.Register("nbodies", func() registry.Demo { return New() })
}
