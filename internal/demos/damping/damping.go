// Package damping lines up a row of dots, each tied by a spring to a fixed
// anchor and slowed by drag, and starts them on a cosine wave.
package damping

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

	dotSides    = 20
	anchorSize  = 0.01
	kickImpulse = 1500.0
)

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// role tags the two kinds of body in the scene.
type role int

const (
	roleDot role = iota
	roleAnchor
)

// Demo implements registry.Demo.
type Demo struct {
	runtime core.RuntimeConfig
	cfg     config.DampingConfig
	st      *stage.Stage
	dots    []*physics.Body
	paused  bool
	state   core.DemoState
}

// New creates the damping demo.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "damping" }
func (d *Demo) Title() string { return "Damping" }

// Reset lays out the dots and binds their springs and drag.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.Close()
	d.runtime = runtime

	cfg, err := config.LoadDamping(configPath)
	if err != nil {
		cfg = config.DefaultDampingConfig()
	}
	d.cfg = cfg
	d.paused = false
	d.dots = d.dots[:0]

	d.st = stage.New(WorldW, WorldH, runtime.Seed)
	scene := d.st.Scene

	left, right := cfg.DotRadius, WorldW+cfg.DotRadius
	n := int(math.Ceil((right - left) / (2 * cfg.DotRadius)))
	for i := 0; i < n; i++ {
		x := left + float64(i)*2*cfg.DotRadius
		center := geom.V(x, WorldH/2)
		angle := (x - left) / (right - left) * 2 * math.Pi * cfg.WaveFrac
		color := core.Palette[i*len(core.Palette)/n]

		dot := physics.NewBodyWithPayload(
			geom.RegularPolygon(center, cfg.DotRadius, dotSides), cfg.DotMass, color, roleDot, nil)
		dot.SetVelocity(geom.V(0, cfg.MaxVelocity*math.Cos(angle)))

		anchor := physics.NewBodyWithPayload(
			geom.RegularPolygon(center, anchorSize, 3), physics.Infinite, core.ColorGray, roleAnchor, nil)

		scene.AddBody(dot)
		scene.AddBody(anchor)
		scene.Spring(cfg.Spring, dot, anchor)
		scene.Drag(cfg.Drag, dot)
		d.dots = append(d.dots, dot)
	}
	d.state = d.st.State(core.DemoState{})
}

// Step applies input and advances one tick. Fire kicks every dot upward
// again.
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

	if in.Has(core.ActionFire) {
		for i, dot := range d.dots {
			phase := float64(i) / float64(len(d.dots)) * 2 * math.Pi * d.cfg.WaveFrac
			dot.AddImpulse(geom.V(0, kickImpulse*math.Cos(phase)))
		}
	}

	d.st.Tick(d.runtime.Dt())
	d.state = d.st.State(core.DemoState{})
	return d.state
}

// Amplitude returns the largest vertical distance of a dot from the rest
// line.
func (d *Demo) Amplitude() float64 {
	var amp float64
	for _, dot := range d.dots {
		amp = math.Max(amp, math.Abs(dot.Centroid().Y-WorldH/2))
	}
	return amp
}

// Render draws the dots over a faint rest line.
func (d *Demo) Render(dst *core.Screen) {
	if d.st == nil {
		return
	}
	vp := d.st.Viewport(dst)
	vp.DrawLine(dst, geom.V(0, WorldH/2), geom.V(WorldW, WorldH/2), '·', core.ColorGray)
	d.st.Draw(dst, func(b *physics.Body) rune {
		if b.Payload() == roleAnchor {
			return 0
		}
		return '●'
	})
	stage.HUD(dst,
		fmt.Sprintf("DAMPING  k=%g  drag=%g  amplitude %.0f", d.cfg.Spring, d.cfg.Drag, d.Amplitude()),
		"space: kick")
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
	registry.Register("damping", func() registry.Demo { return New() })
}
