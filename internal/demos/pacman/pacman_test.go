package pacman

import (
	"math"
	"testing"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/geom"
)

func newDemo(t *testing.T) *Demo {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	d := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 9
	d.Reset(cfg)
	t.Cleanup(d.Close)
	return d
}

// emptyDemo starts a world with no pellets.
func emptyDemo(t *testing.T) *Demo {
	t.Helper()
	d := newDemo(t)
	d.cfg.StartPellets = 0
	d.start()
	return d
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayout(t *testing.T) {
	d := newDemo(t)
	st := d.State()
	if st.Bodies != 1+d.cfg.StartPellets {
		t.Errorf("Bodies = %d, want pacman plus %d pellets", st.Bodies, d.cfg.StartPellets)
	}
	if st.Forces != 0 {
		t.Errorf("Forces = %d, want none", st.Forces)
	}
	if d.st.Scene.BodyAt(0) != d.pacman {
		t.Error("pacman should be the first body")
	}
	if len(d.pacman.Shape()) != arcPoints+1 {
		t.Errorf("wedge has %d vertices, want %d", len(d.pacman.Shape()), arcPoints+1)
	}
}

func TestEatsPelletsInReach(t *testing.T) {
	d := emptyDemo(t)
	center := d.pacman.Centroid()
	near := d.addPelletAt(center.Add(geom.V(30, 0)))
	far := d.addPelletAt(center.Add(geom.V(300, 0)))

	st := d.Step(core.InputFrame{})
	if !near.IsRemoved() {
		t.Error("pellet within reach should be eaten")
	}
	if far.IsRemoved() {
		t.Error("distant pellet should survive")
	}
	if st.Score != d.cfg.PointsPerPellet || d.pellets != 1 {
		t.Errorf("score/pellets = %d/%d, want %d/1", st.Score, d.pellets, d.cfg.PointsPerPellet)
	}
	if st.Bodies != 2 {
		t.Errorf("Bodies = %d, want 2 after pruning", st.Bodies)
	}
	if d.st.Scene.IndexOf(near) != -1 {
		t.Error("eaten pellet should leave the scene")
	}
}

func TestSteerHoldThenCoast(t *testing.T) {
	d := emptyDemo(t)

	d.Step(core.NewInputFrame(core.ActionRight))
	if v := d.pacman.Velocity(); !approx(v.X, d.cfg.Speed) || !approx(v.Y, 0) {
		t.Fatalf("velocity after right = %v", v)
	}
	if !approx(d.pacman.Rotation(), 0) {
		t.Errorf("rotation = %v, want 0", d.pacman.Rotation())
	}

	d.Step(core.NewInputFrame(core.ActionUp))
	if v := d.pacman.Velocity(); !approx(v.X, 0) || !approx(v.Y, d.cfg.Speed) {
		t.Fatalf("velocity after up = %v", v)
	}
	if !approx(d.pacman.Rotation(), math.Pi/2) {
		t.Errorf("rotation = %v, want pi/2", d.pacman.Rotation())
	}

	for i := 0; i < d.cfg.HoldTicks; i++ {
		d.Step(core.InputFrame{})
	}
	if v := d.pacman.Velocity(); !approx(v.Y, d.cfg.Coast) {
		t.Errorf("velocity after release = %v, want coasting at %v", v, d.cfg.Coast)
	}
}

func TestWrapsAroundEdges(t *testing.T) {
	d := emptyDemo(t)
	d.pacman.SetCentroid(geom.V(WorldW+5, WorldH/2))

	d.Step(core.InputFrame{})
	if c := d.pacman.Centroid(); !approx(c.X, 5) || !approx(c.Y, WorldH/2) {
		t.Errorf("centroid = %v, want (5, %v)", c, WorldH/2)
	}
}

func TestPelletsAppearUpToCap(t *testing.T) {
	d := emptyDemo(t)
	d.cfg.EatRatio = 0
	d.cfg.MaxPellets = 2
	d.cfg.Interval = 0.5

	for i := 0; i < 35; i++ {
		d.Step(core.InputFrame{})
	}
	if d.pellets != 1 {
		t.Fatalf("pellets after one interval = %d, want 1", d.pellets)
	}
	for i := 0; i < 200; i++ {
		d.Step(core.InputFrame{})
	}
	if d.pellets != 2 || d.State().Bodies != 3 {
		t.Errorf("pellets = %d bodies = %d, want capped at 2", d.pellets, d.State().Bodies)
	}
	for _, b := range d.st.Scene.Bodies() {
		if b == d.pacman {
			continue
		}
		c := b.Centroid()
		if c.X < 0 || c.X > WorldW || c.Y < 0 || c.Y > WorldH {
			t.Errorf("pellet spawned outside the world at %v", c)
		}
	}
}

func TestPauseAndRestart(t *testing.T) {
	d := emptyDemo(t)
	d.Step(core.NewInputFrame(core.ActionRight))

	if st := d.Step(core.NewInputFrame(core.ActionPause)); !st.Paused {
		t.Fatal("pause should report Paused")
	}
	before := d.pacman.Centroid()
	d.Step(core.InputFrame{})
	if d.pacman.Centroid() != before {
		t.Error("paused demo should not move")
	}

	d.Step(core.NewInputFrame(core.ActionPause))
	d.addPelletAt(d.pacman.Centroid())
	d.Step(core.InputFrame{})
	if d.State().Score == 0 {
		t.Fatal("pellet under pacman should be eaten")
	}

	st := d.Step(core.NewInputFrame(core.ActionRestart))
	if st.Score != 0 || st.Bodies != 1 || d.pacman.Velocity() != geom.Zero {
		t.Errorf("restart state = %+v", st)
	}
}

func TestRender(t *testing.T) {
	d := emptyDemo(t)
	d.addPelletAt(geom.V(100, 100))
	scr := core.NewScreen(80, 24)
	d.Render(scr)

	if scr.Get(0, 0) != 'P' {
		t.Errorf("HUD should start with the title, got %q", scr.Row(0))
	}
	wedge, pellets := 0, 0
	for y := 1; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			switch scr.Get(x, y) {
			case '█':
				wedge++
			case '•':
				pellets++
			}
		}
	}
	if wedge == 0 || pellets != 1 {
		t.Errorf("wedge cells %d pellet cells %d, want some and 1", wedge, pellets)
	}
}
