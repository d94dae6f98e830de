// Package stage holds the plumbing every physics demo shares: the scene, the
// world bounds, a seeded random source and drawing the scene into a screen.
package stage

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/geom"
	"github.com/vovakirdan/polyarcade/internal/physics"
)

// HUDRows is the number of screen rows reserved above the world.
const HUDRows = 1

// Fill is the glyph used for body interiors.
const Fill = '█'

// Stage is a scene living in a world of fixed size with Y pointing up.
type Stage struct {
	Scene  *physics.Scene
	Width  float64
	Height float64
	Rand   *rand.Rand
	Seed   int64
	Ticks  int
}

// New creates an empty stage. A zero seed picks one from the clock.
func New(width, height float64, seed int64) *Stage {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Stage{
		Scene:  physics.NewScene(),
		Width:  width,
		Height: height,
		Rand:   rand.New(rand.NewSource(seed)),
		Seed:   seed,
	}
}

// Close releases the scene. Calling it on a nil stage is a no-op.
func (s *Stage) Close() {
	if s == nil || s.Scene == nil {
		return
	}
	s.Scene.Close()
	s.Scene = nil
}

// Tick advances the scene by dt.
func (s *Stage) Tick(dt float64) {
	s.Scene.Tick(dt)
	s.Ticks++
}

// Range returns a uniform value in [lo, hi).
func (s *Stage) Range(lo, hi float64) float64 {
	return lo + s.Rand.Float64()*(hi-lo)
}

// Viewport maps the whole world onto the screen below the HUD.
func (s *Stage) Viewport(dst *core.Screen) core.Viewport {
	return core.NewViewport(s.Width, s.Height,
		core.NewRect(0, HUDRows, dst.Width(), dst.Height()-HUDRows))
}

// Draw fills every body in the scene. glyph may be nil, in which case all
// bodies use Fill; a zero rune from glyph skips the body.
func (s *Stage) Draw(dst *core.Screen, glyph func(*physics.Body) rune) {
	vp := s.Viewport(dst)
	for _, b := range s.Scene.Bodies() {
		r := Fill
		if glyph != nil {
			r = glyph(b)
		}
		if r == 0 {
			continue
		}
		vp.FillPolygon(dst, b.Shape(), r, b.Color())
	}
}

// State fills in the scene counters and energy of a demo state.
func (s *Stage) State(st core.DemoState) core.DemoState {
	if s.Scene != nil {
		st.Bodies = s.Scene.Len()
		st.Forces = s.Scene.ForceCount()
		st.Kinetic = physics.Kinetic(s.Scene.Bodies())
	}
	return st
}

// Contains reports whether p lies inside the world, expanded by margin.
func (s *Stage) Contains(p geom.Vector, margin float64) bool {
	return p.X >= -margin && p.X <= s.Width+margin && p.Y >= -margin && p.Y <= s.Height+margin
}

// Reflect turns b's velocity back toward the world when any vertex has
// crossed an edge while moving outward.
func (s *Stage) Reflect(b *physics.Body) {
	lo, hi := b.Shape().Bounds()
	v := b.Velocity()
	switch {
	case lo.X <= 0 && v.X < 0:
		v.X = -v.X
	case hi.X >= s.Width && v.X > 0:
		v.X = -v.X
	}
	switch {
	case lo.Y <= 0 && v.Y < 0:
		v.Y = -v.Y
	case hi.Y >= s.Height && v.Y > 0:
		v.Y = -v.Y
	}
	b.SetVelocity(v)
}

// Wrap moves b to the opposite edge once its centroid leaves the world.
func (s *Stage) Wrap(b *physics.Body) {
	c := b.Centroid()
	w := c
	switch {
	case c.X < 0:
		w.X += s.Width
	case c.X > s.Width:
		w.X -= s.Width
	}
	switch {
	case c.Y < 0:
		w.Y += s.Height
	case c.Y > s.Height:
		w.Y -= s.Height
	}
	if w != c {
		b.SetCentroid(w)
	}
}

// HUD writes left-aligned and right-aligned status text on the top row.
func HUD(dst *core.Screen, left, right string) {
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorGray)
}

// Banner centers a stack of lines in the middle of the screen.
func Banner(dst *core.Screen, c core.Color, lines ...string) {
	y := dst.Height()/2 - len(lines)/2
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line, c)
	}
}

// Counters formats the scene size for the HUD.
func Counters(st core.DemoState) string {
	return fmt.Sprintf("bodies %d  forces %d", st.Bodies, st.Forces)
}
