package damping

import (
	"testing"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/physics"
)

func newDemo(t *testing.T) *Demo {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	d := New()
	d.Reset(core.DefaultConfig())
	t.Cleanup(d.Close)
	return d
}

// peak runs the demo for n ticks and returns the largest amplitude seen.
func peak(d *Demo, n int, in core.InputFrame) float64 {
	var p float64
	for i := 0; i < n; i++ {
		d.Step(in)
		in = core.InputFrame{}
		p = max(p, d.Amplitude())
	}
	return p
}

func TestLayout(t *testing.T) {
	d := newDemo(t)
	st := d.State()

	if len(d.dots) == 0 {
		t.Fatal("no dots")
	}
	if st.Bodies != 2*len(d.dots) {
		t.Errorf("Bodies = %d, want a dot and an anchor per column (%d)", st.Bodies, 2*len(d.dots))
	}
	if st.Forces != 2*len(d.dots) {
		t.Errorf("Forces = %d, want a spring and a drag per dot (%d)", st.Forces, 2*len(d.dots))
	}

	springs, drags := 0, 0
	for _, f := range d.st.Scene.Forces() {
		switch f.Kind() {
		case physics.KindSpring:
			springs++
		case physics.KindDrag:
			drags++
		}
	}
	if springs != len(d.dots) || drags != len(d.dots) {
		t.Errorf("springs/drags = %d/%d", springs, drags)
	}
}

func TestOscillationDecays(t *testing.T) {
	d := newDemo(t)
	dt := d.runtime.Dt()
	window := int(4 / dt)

	early := peak(d, window, core.InputFrame{})
	peak(d, int(16/dt), core.InputFrame{})
	late := peak(d, window, core.InputFrame{})

	if early <= 0 {
		t.Fatal("dots should start moving")
	}
	if late >= early*0.8 {
		t.Errorf("drag should shrink the swing: early %.1f, late %.1f", early, late)
	}

	for _, b := range d.st.Scene.Bodies() {
		if b.Payload() == roleAnchor && b.Velocity().Len() != 0 {
			t.Error("anchors must not move")
		}
	}
}

func TestKickAddsEnergy(t *testing.T) {
	d := newDemo(t)
	dt := d.runtime.Dt()
	peak(d, int(30/dt), core.InputFrame{})

	quiet := d.Amplitude()
	kicked := peak(d, int(2/dt), core.NewInputFrame(core.ActionFire))
	if kicked <= quiet {
		t.Errorf("kick should raise the amplitude: %.1f -> %.1f", quiet, kicked)
	}
}

func TestRenderHidesAnchors(t *testing.T) {
	d := newDemo(t)
	scr := core.NewScreen(80, 24)
	d.Render(scr)

	for y := 1; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.GetCell(x, y).Color == core.ColorGray && scr.Get(x, y) == '█' {
				t.Fatalf("anchor drawn at %d,%d", x, y)
			}
		}
	}
}
