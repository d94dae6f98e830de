package nbodies

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/geom"
	"github.com/vovakirdan/polyarcade/internal/physics"
)

func newDemo(t *testing.T, yaml string) *Demo {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	if yaml != "" {
		path := filepath.Join(t.TempDir(), "nbodies.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)
		t.Cleanup(func() { SetConfigPath("") })
	}
	d := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	d.Reset(cfg)
	t.Cleanup(d.Close)
	return d
}

func TestGravityBindsEveryPair(t *testing.T) {
	d := newDemo(t, "")
	st := d.State()

	if st.Bodies != 40 {
		t.Fatalf("Bodies = %d, want 40", st.Bodies)
	}
	if st.Forces != 40*39/2 {
		t.Errorf("Forces = %d, want %d", st.Forces, 40*39/2)
	}
	for _, f := range d.st.Scene.Forces() {
		if f.Kind() != physics.KindNewtonianGravity {
			t.Fatalf("unexpected force kind %v", f.Kind())
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := newDemo(t, "")
	b := newDemo(t, "")
	for i := 0; i < 30; i++ {
		a.Step(core.InputFrame{})
		b.Step(core.InputFrame{})
	}
	for i := 0; i < a.st.Scene.Len(); i++ {
		if a.st.Scene.BodyAt(i).Centroid() != b.st.Scene.BodyAt(i).Centroid() {
			t.Fatalf("body %d diverged with the same seed", i)
		}
	}
}

func TestPairAttracts(t *testing.T) {
	d := newDemo(t, "bodies: 2\nsides: 4\nmin_mass: 100\nmax_mass: 100\nmin_size: 10\nmax_size: 10\ng: 1000\n")
	a, b := d.st.Scene.BodyAt(0), d.st.Scene.BodyAt(1)
	a.SetCentroid(geom.V(400, 250))
	b.SetCentroid(geom.V(600, 250))

	d.Step(core.InputFrame{})

	if a.Velocity().X <= 0 || b.Velocity().X >= 0 {
		t.Errorf("bodies should accelerate toward each other: %v %v", a.Velocity(), b.Velocity())
	}
	if d.Energy() <= 0 {
		t.Error("kinetic energy should grow from rest")
	}
}

func TestWrapKeepsBodiesInWorld(t *testing.T) {
	d := newDemo(t, "bodies: 1\nsides: 4\nmin_mass: 10\nmax_mass: 10\nmin_size: 10\nmax_size: 10\ng: 1\nwrap: true\n")
	body := d.st.Scene.BodyAt(0)
	body.SetCentroid(geom.V(WorldW-1, 100))
	body.SetVelocity(geom.V(600, 0))

	for i := 0; i < 10; i++ {
		d.Step(core.InputFrame{})
	}
	if c := body.Centroid(); c.X < 0 || c.X > WorldW {
		t.Errorf("wrapped body at %v", c)
	}
}
