package swing

import (
	"testing"

	"github.com/vovakirdan/polyarcade/internal/config"
	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/geom"
	"github.com/vovakirdan/polyarcade/internal/physics"
)

var idle = core.InputFrame{}

func newDemo(t *testing.T) *Demo {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	d := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	d.Reset(cfg)
	t.Cleanup(d.Close)
	return d
}

// withLevels swaps in hand-built levels and restarts from the first one.
func withLevels(t *testing.T, levels ...config.SwingLevel) *Demo {
	t.Helper()
	d := newDemo(t)
	d.cfg.Levels = levels
	d.loadLevel(0)
	return d
}

// roomLevel has a floor below the start and a ceiling above it.
func roomLevel() config.SwingLevel {
	return config.SwingLevel{
		Name:       "room",
		Start:      config.Point{X: 500, Y: 300},
		Goal:       config.Point{X: 900, Y: 400},
		GoalRadius: 30,
		Platforms: []config.Block{
			{X: 500, Y: 100, W: 200, H: 20},
			{X: 500, Y: 420, W: 200, H: 20},
		},
	}
}

func hasKind(d *Demo, kind physics.ForceKind) bool {
	for _, f := range d.st.Scene.Forces() {
		if f.Kind() == kind {
			return true
		}
	}
	return false
}

func countRole(d *Demo, r role) int {
	n := 0
	for _, b := range d.st.Scene.Bodies() {
		if b.Payload() == r {
			n++
		}
	}
	return n
}

// attach shoots straight up at the ceiling and waits for the tongue to stick.
func attach(t *testing.T, d *Demo) {
	t.Helper()
	d.cursor.SetCentroid(geom.V(500, 470))
	d.Step(core.NewInputFrame(core.ActionFire))
	for i := 0; i < 20 && d.tongue != nil && !d.tongue.attached; i++ {
		d.Step(idle)
	}
	if d.tongue == nil || !d.tongue.attached {
		t.Fatal("tongue never attached to the ceiling")
	}
}

func TestLayout(t *testing.T) {
	d := newDemo(t)
	lvl := d.cfg.Levels[0]

	solids := 3 + len(lvl.Platforms) + len(lvl.Lava) + 1
	if len(d.solid) != solids {
		t.Fatalf("solid = %d, want %d", len(d.solid), solids)
	}
	st := d.State()
	if st.Bodies != solids+2 {
		t.Errorf("Bodies = %d, want %d", st.Bodies, solids+2)
	}
	// Gravity, a bounce and a friction handler per solid, one per lava
	// block and the goal.
	if want := 1 + 2*solids + len(lvl.Lava) + 1; st.Forces != want {
		t.Errorf("Forces = %d, want %d", st.Forces, want)
	}
	if d.phase != PhasePlaying || st.Over || st.Won {
		t.Errorf("fresh level: phase %q state %+v", d.phase, st)
	}
}

func TestBallLandsOnPlatform(t *testing.T) {
	d := newDemo(t)

	for i := 0; i < 120; i++ {
		d.Step(idle)
	}
	if d.player.IsRemoved() || d.phase != PhasePlaying {
		t.Fatalf("ball should survive landing, phase %q", d.phase)
	}
	y := d.player.Centroid().Y
	if y < 200 || y > 261 {
		t.Errorf("ball y = %v, want resting above the start platform", y)
	}
}

func TestTongueAttachesAndPulls(t *testing.T) {
	d := withLevels(t, roomLevel())
	attach(t, d)

	if !hasKind(d, physics.KindLeash) {
		t.Fatal("attached tongue should leash the ball")
	}
	if countRole(d, roleTip) != 0 || countRole(d, roleAnchor) != 1 {
		t.Errorf("tips %d anchors %d, want 0 and 1", countRole(d, roleTip), countRole(d, roleAnchor))
	}

	top := d.player.Centroid().Y
	for i := 0; i < 60; i++ {
		d.Step(idle)
		if y := d.player.Centroid().Y; y > top {
			top = y
		}
	}
	if top < 330 {
		t.Errorf("leash should lift the ball toward the ceiling, peak y = %v", top)
	}
}

func TestTongueSnapsPastCutoff(t *testing.T) {
	d := withLevels(t, roomLevel())
	attach(t, d)

	d.player.SetCentroid(geom.V(500, 50))
	d.Step(idle)

	if d.tongue != nil {
		t.Error("stretched tongue should be released")
	}
	if hasKind(d, physics.KindLeash) || countRole(d, roleAnchor) != 0 {
		t.Error("release should drop the leash and the anchor")
	}
}

func TestFireAgainReleases(t *testing.T) {
	d := withLevels(t, roomLevel())
	attach(t, d)

	d.Step(core.NewInputFrame(core.ActionFire))
	if d.tongue != nil || hasKind(d, physics.KindLeash) {
		t.Error("second fire should let go of the tongue")
	}
}

func TestFlyingTongueGivesUp(t *testing.T) {
	d := withLevels(t, roomLevel())
	d.cursor.SetCentroid(geom.V(900, 300))
	d.Step(core.NewInputFrame(core.ActionFire))
	if countRole(d, roleTip) != 1 {
		t.Fatal("fire should launch a tip")
	}

	for i := 0; i < 20; i++ {
		d.Step(idle)
	}
	if d.tongue != nil || countRole(d, roleTip) != 0 {
		t.Error("a tip that misses should be dropped past the cutoff")
	}
}

func TestLavaKills(t *testing.T) {
	lvl := roomLevel()
	lvl.Platforms = lvl.Platforms[1:]
	lvl.Lava = []config.Block{{X: 500, Y: 100, W: 400, H: 40}}
	d := withLevels(t, lvl)

	for i := 0; i < 90 && d.phase == PhasePlaying; i++ {
		d.Step(idle)
	}
	if d.phase != PhaseLost || !d.State().Over {
		t.Fatalf("phase = %q, want lost", d.phase)
	}

	d.Step(core.NewInputFrame(core.ActionRestart))
	if d.phase != PhasePlaying || d.player.IsRemoved() {
		t.Error("restart should replay the level")
	}
}

func TestGoalAdvancesLevel(t *testing.T) {
	win := roomLevel()
	win.Goal = config.Point{X: 500, Y: 200}
	d := withLevels(t, win, roomLevel())

	for i := 0; i < 60 && d.phase == PhasePlaying; i++ {
		d.Step(idle)
	}
	if d.phase != PhaseWon || !d.State().Won {
		t.Fatalf("phase = %q, want won", d.phase)
	}
	if d.score < minPoints {
		t.Errorf("score = %d, want at least %d", d.score, minPoints)
	}

	d.Step(core.NewInputFrame(core.ActionConfirm))
	if d.Level() != 1 || d.phase != PhasePlaying {
		t.Errorf("level %d phase %q after confirm", d.Level(), d.phase)
	}
}

func TestLastGoalFinishes(t *testing.T) {
	win := roomLevel()
	win.Goal = config.Point{X: 500, Y: 200}
	d := withLevels(t, win)

	for i := 0; i < 60 && d.phase == PhasePlaying; i++ {
		d.Step(idle)
	}
	st := d.State()
	if d.phase != PhaseDone || !st.Over || !st.Won {
		t.Errorf("phase %q state %+v, want done", d.phase, st)
	}
}

func TestPauseOnlyMovesCursor(t *testing.T) {
	d := newDemo(t)
	d.Step(core.NewInputFrame(core.ActionPause))
	if !d.State().Paused {
		t.Fatal("pause should pause")
	}

	ball := d.player.Centroid()
	cursor := d.cursor.Centroid()
	d.Step(core.NewInputFrame(core.ActionLeft))
	d.Step(idle)

	if d.player.Centroid() != ball {
		t.Error("ball moved while paused")
	}
	if d.cursor.Centroid().X >= cursor.X {
		t.Error("cursor should still move while paused")
	}
}

func TestLevelBonus(t *testing.T) {
	tests := []struct {
		seconds float64
		want    int
	}{
		{0, levelPoints},
		{10, levelPoints - 10*pointsPerSec},
		{1000, minPoints},
	}
	for _, tt := range tests {
		if got := levelBonus(tt.seconds); got != tt.want {
			t.Errorf("levelBonus(%v) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	d := withLevels(t, roomLevel())
	attach(t, d)

	scr := core.NewScreen(80, 24)
	d.Render(scr)
	if got := scr.Row(0); len(got) == 0 || got[0] != 'S' {
		t.Errorf("HUD row = %q", got)
	}
	found := false
	for y := 0; y < scr.Height() && !found; y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.Get(x, y) == '●' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("ball not drawn")
	}
}
