package stage

import (
	"testing"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/geom"
	"github.com/vovakirdan/polyarcade/internal/physics"
)

func square(center geom.Vector) *physics.Body {
	return physics.NewBody(geom.Rectangle(center, 10, 10), 1, core.ColorWhite)
}

func TestReflect(t *testing.T) {
	s := New(100, 50, 1)
	defer s.Close()

	tests := []struct {
		name string
		at   geom.Vector
		v    geom.Vector
		want geom.Vector
	}{
		{"left edge moving out", geom.V(4, 25), geom.V(-3, 1), geom.V(3, 1)},
		{"left edge moving in", geom.V(4, 25), geom.V(3, 1), geom.V(3, 1)},
		{"top edge", geom.V(50, 47), geom.V(1, 2), geom.V(1, -2)},
		{"corner", geom.V(98, 2), geom.V(5, -5), geom.V(-5, 5)},
		{"inside", geom.V(50, 25), geom.V(5, 5), geom.V(5, 5)},
	}
	for _, tt := range tests {
		b := square(tt.at)
		b.SetVelocity(tt.v)
		s.Reflect(b)
		if got := b.Velocity(); got != tt.want {
			t.Errorf("%s: velocity = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	s := New(100, 50, 1)
	defer s.Close()

	b := square(geom.V(-2, 60))
	s.Wrap(b)
	c := b.Centroid()
	if !approx(c.X, 98) || !approx(c.Y, 10) {
		t.Errorf("wrapped centroid = %v, want (98, 10)", c)
	}
}

func TestTickCountsAndState(t *testing.T) {
	s := New(100, 50, 1)
	defer s.Close()

	a := square(geom.V(20, 20))
	a.SetVelocity(geom.V(2, 0))
	s.Scene.AddBody(a)
	s.Scene.AddBody(square(geom.V(60, 20)))
	s.Scene.Spring(1, a, s.Scene.BodyAt(1))

	s.Tick(0.1)
	s.Tick(0.1)
	if s.Ticks != 2 {
		t.Errorf("Ticks = %d, want 2", s.Ticks)
	}

	st := s.State(core.DemoState{Score: 7})
	if st.Bodies != 2 || st.Forces != 1 || st.Score != 7 {
		t.Errorf("state = %+v", st)
	}
	if st.Kinetic <= 0 {
		t.Errorf("moving bodies should report kinetic energy, got %v", st.Kinetic)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a, b := New(10, 10, 42), New(10, 10, 42)
	defer a.Close()
	defer b.Close()

	for i := 0; i < 5; i++ {
		if x, y := a.Range(0, 1), b.Range(0, 1); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
	if New(1, 1, 0).Seed == 0 {
		t.Error("zero seed should be replaced by a clock seed")
	}
}

func TestDrawSkipsZeroGlyph(t *testing.T) {
	s := New(100, 50, 1)
	defer s.Close()

	shown := physics.NewBodyWithPayload(geom.Rectangle(geom.V(25, 25), 40, 40), 1, core.ColorRed, "shown", nil)
	hidden := physics.NewBodyWithPayload(geom.Rectangle(geom.V(75, 25), 40, 40), 1, core.ColorRed, "hidden", nil)
	s.Scene.AddBody(shown)
	s.Scene.AddBody(hidden)

	scr := core.NewScreen(20, 11)
	s.Draw(scr, func(b *physics.Body) rune {
		if b.Payload() == "hidden" {
			return 0
		}
		return '#'
	})

	left, right := 0, 0
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.Get(x, y) != '#' {
				continue
			}
			if x < 10 {
				left++
			} else {
				right++
			}
		}
	}
	if left == 0 || right != 0 {
		t.Errorf("filled cells left %d right %d, want some and none", left, right)
	}
}

func TestCloseNil(t *testing.T) {
	var s *Stage
	s.Close()
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
