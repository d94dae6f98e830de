package gravity

import (
	"testing"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/demos/stage"
	"github.com/vovakirdan/polyarcade/internal/geom"
	"github.com/vovakirdan/polyarcade/internal/physics"
)

func newDemo(t *testing.T) *Demo {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	d := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	d.Reset(cfg)
	t.Cleanup(d.Close)
	return d
}

func TestStarsSpawnOnIntervalWithMorePoints(t *testing.T) {
	d := newDemo(t)

	// Two intervals at 60 fps, with slack for float accumulation.
	for i := 0; i < 100; i++ {
		d.Step(core.InputFrame{})
	}
	if d.spawned != 3 {
		t.Fatalf("spawned = %d, want 3", d.spawned)
	}

	bodies := d.st.Scene.Bodies()
	if len(bodies) != 3 {
		t.Fatalf("bodies = %d, want 3", len(bodies))
	}
	for i, b := range bodies {
		tag := b.Payload().(starTag)
		if tag.serial != i || tag.points != d.cfg.StartPoints+i {
			t.Errorf("star %d tag = %+v", i, tag)
		}
		if len(b.Shape()) != 2*tag.points {
			t.Errorf("star %d has %d vertices, want %d", i, len(b.Shape()), 2*tag.points)
		}
		if e := b.Elasticity(); e < d.cfg.MinElasticity || e > d.cfg.MaxElasticity {
			t.Errorf("star %d elasticity %v outside [%v, %v]", i, e, d.cfg.MinElasticity, d.cfg.MaxElasticity)
		}
	}
	if got := d.State().Forces; got != 3 {
		t.Errorf("Forces = %d, want one gravity generator per star", got)
	}
	for _, f := range d.st.Scene.Forces() {
		if f.Kind() != physics.KindUniformGravity {
			t.Errorf("unexpected force kind %v", f.Kind())
		}
	}
}

func TestPointsStartOverPastMax(t *testing.T) {
	d := newDemo(t)
	d.cfg.MaxPoints = 3

	d.spawn()
	d.spawn()
	tags := []int{}
	for _, b := range d.st.Scene.Bodies() {
		tags = append(tags, b.Payload().(starTag).points)
	}
	want := []int{2, 3, 2}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("points = %v, want %v", tags, want)
		}
	}
}

func TestFloorBounce(t *testing.T) {
	d := newDemo(t)
	star := d.st.Scene.BodyAt(0)
	star.SetCentroid(geom.V(500, 30))
	star.SetVelocity(geom.V(0, -500))

	d.Step(core.InputFrame{})

	want := 500*star.Elasticity() - d.cfg.Gravity*d.runtime.Dt()
	if got := star.Velocity().Y; got <= 0 || got-want > 1e-9 || want-got > 1e-9 {
		t.Errorf("vy after bounce = %v, want %v", got, want)
	}

	// Rising stars are left alone even while touching the floor.
	star.SetCentroid(geom.V(500, 30))
	star.SetVelocity(geom.V(0, 100))
	d.Step(core.InputFrame{})
	if got := star.Velocity().Y; got >= 100 {
		t.Errorf("rising star should only feel gravity, vy = %v", got)
	}
}

func TestStarPastRightEdgeIsDropped(t *testing.T) {
	d := newDemo(t)
	star := d.st.Scene.BodyAt(0)
	star.SetCentroid(geom.V(WorldW+100, 250))

	st := d.Step(core.InputFrame{})
	if !star.IsRemoved() {
		t.Fatal("star past the edge should be removed")
	}
	if st.Bodies != 0 || st.Forces != 0 {
		t.Errorf("bodies/forces = %d/%d, want 0/0 after pruning", st.Bodies, st.Forces)
	}
	if st.Score != 1 {
		t.Errorf("Score = %d, want 1 crossed star", st.Score)
	}
}

func TestFireDropsStar(t *testing.T) {
	d := newDemo(t)
	st := d.Step(core.NewInputFrame(core.ActionFire))
	if st.Bodies != 2 || st.Forces != 2 {
		t.Errorf("bodies/forces = %d/%d, want 2/2", st.Bodies, st.Forces)
	}
}

func TestPauseAndRestart(t *testing.T) {
	d := newDemo(t)
	star := d.st.Scene.BodyAt(0)

	if st := d.Step(core.NewInputFrame(core.ActionPause)); !st.Paused {
		t.Fatal("pause should report Paused")
	}
	before := star.Centroid()
	for i := 0; i < 120; i++ {
		d.Step(core.InputFrame{})
	}
	if star.Centroid() != before || d.spawned != 1 {
		t.Error("paused demo should neither move nor spawn")
	}

	d.Step(core.NewInputFrame(core.ActionPause))
	d.Step(core.NewInputFrame(core.ActionFire))
	d.Step(core.NewInputFrame(core.ActionRestart))
	if d.State().Bodies != 1 || d.spawned != 1 || d.nextPoints != d.cfg.StartPoints+1 {
		t.Errorf("restart should leave one star, got %d", d.State().Bodies)
	}
}

func TestRender(t *testing.T) {
	d := newDemo(t)
	scr := core.NewScreen(80, 24)
	d.Render(scr)

	if scr.Get(0, 0) != 'G' {
		t.Errorf("HUD should start with the title, got %q", scr.Row(0))
	}
	filled := 0
	for y := 1; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.Get(x, y) == stage.Fill {
				filled++
			}
		}
	}
	if filled == 0 {
		t.Error("the first star should cover some cells")
	}
}
