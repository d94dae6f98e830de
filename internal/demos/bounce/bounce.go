// Package bounce is a spinning star ricocheting around the world. Fire adds
// another star; stars collide elastically with each other.
package bounce

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

	// MaxStars caps how many stars Fire can add.
	MaxStars = 8
)

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Demo implements registry.Demo.
type Demo struct {
	runtime core.RuntimeConfig
	cfg     config.BounceConfig
	st      *stage.Stage
	stars   []*physics.Body
	paused  bool
	state   core.DemoState
}

// New creates the bounce demo.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "bounce" }
func (d *Demo) Title() string { return "Bounce" }

// Reset rebuilds the world with the configured number of stars.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.Close()
	d.runtime = runtime

	cfg, err := config.LoadBounce(configPath)
	if err != nil {
		cfg = config.DefaultBounceConfig()
	}
	d.cfg = cfg

	d.st = stage.New(WorldW, WorldH, runtime.Seed)
	d.stars = d.stars[:0]
	d.paused = false

	for i := 0; i < max(1, cfg.Stars); i++ {
		d.addStar()
	}
	d.state = d.st.State(core.DemoState{})
}

// addStar drops a star into the world. The first one starts at the center
// and flies off at the classic 3-4-5 angle; later ones get a random spot and
// heading.
func (d *Demo) addStar() {
	cfg := d.cfg
	center := geom.V(WorldW/2, WorldH/2)
	if len(d.stars) > 0 {
		center = geom.V(
			d.st.Range(cfg.Radius, WorldW-cfg.Radius),
			d.st.Range(cfg.Radius, WorldH-cfg.Radius),
		)
	}
	shape := geom.Star(center, cfg.Radius, cfg.Radius/cfg.Ratio, cfg.Points)

	color := core.ColorCyan
	if len(cfg.Colors) > 0 {
		color = cfg.Colors[len(d.stars)%len(cfg.Colors)]
	}

	star := physics.NewBody(shape, cfg.Mass, color)
	star.SetElasticity(cfg.Elasticity)
	star.SetPassiveRotation(cfg.Spin)

	heading := math.Atan2(3, 4)
	if len(d.stars) > 0 {
		heading = d.st.Range(0, 2*math.Pi)
	}
	star.SetVelocity(geom.FromAngle(heading, cfg.Speed))

	d.st.Scene.AddBody(star)
	for _, other := range d.stars {
		d.st.Scene.ElasticCollision(cfg.Elasticity, star, other)
	}
	d.stars = append(d.stars, star)
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

	if in.Has(core.ActionFire) && len(d.stars) < MaxStars {
		d.addStar()
	}

	for _, star := range d.stars {
		d.st.Reflect(star)
	}
	d.st.Tick(d.runtime.Dt())

	d.state = d.st.State(core.DemoState{})
	return d.state
}

// Render draws the stars and the HUD.
func (d *Demo) Render(dst *core.Screen) {
	if d.st == nil {
		return
	}
	d.st.Draw(dst, nil)
	stage.HUD(dst, fmt.Sprintf("BOUNCE  stars %d/%d", len(d.stars), MaxStars), "space: add star")
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
	registry.Register("bounce", func() registry.Demo { return New() })
}
