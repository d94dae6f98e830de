// Package invaders is a space invaders round built from destructive
// collisions: every shot and every ship is a body, and a hit removes both.
package invaders

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

	playerY     = 20.0
	playerSides = 24
	shipSpread  = 2.5 // radians covered by an enemy's arc
	shipPoints  = 20
	shotW       = 5.0
	shotH       = 8.0
)

// Phase names.
const (
	PhasePlaying  = "playing"
	PhaseGameOver = "gameover"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		p = ""
	}
	difficultyPreset = p
}

// role tags what a body is.
type role int

const (
	rolePlayer role = iota
	roleEnemy
	rolePlayerShot
	roleEnemyShot
)

// Demo implements registry.Demo.
type Demo struct {
	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager
	st         *stage.Stage

	player  *physics.Body
	enemies []*physics.Body
	shots   []*physics.Body

	phase    string
	score    int
	wave     int
	dir      float64 // formation heading, +1 right or -1 left
	cooldown int
	holdDir  float64
	holdLeft int
	paused   bool
	state    core.DemoState
}

// New creates the invaders demo.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "invaders" }
func (d *Demo) Title() string { return "Space Invaders" }

// Reset places the player and the first formation.
func (d *Demo) Reset(runtime core.RuntimeConfig) {
	d.Close()
	d.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	d.cfg = cfg
	d.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	d.st = stage.New(WorldW, WorldH, runtime.Seed)
	d.score = 0
	d.wave = 0
	d.cooldown = 0
	d.holdDir, d.holdLeft = 0, 0
	d.paused = false
	d.shots = d.shots[:0]

	p := cfg.Player
	d.player = physics.NewBodyWithPayload(
		ellipse(geom.V(WorldW/2, playerY), p.Width/2, p.Height/2, playerSides),
		p.Mass, core.ColorBrightGreen, rolePlayer, nil)
	d.st.Scene.AddBody(d.player)

	d.phase = PhasePlaying
	d.spawnFormation()
	d.state = d.snapshot()
}

func ellipse(center geom.Vector, rx, ry float64, n int) geom.Polygon {
	p := make(geom.Polygon, n)
	for i := range p {
		a := 2 * math.Pi * float64(i) / float64(n)
		p[i] = geom.V(center.X+rx*math.Cos(a), center.Y+ry*math.Sin(a))
	}
	return p
}

// ship is a fan opening upward from tip.
func ship(tip geom.Vector, radius float64) geom.Polygon {
	p := geom.Polygon{tip}
	for i := 0; i < shipPoints-1; i++ {
		a := math.Pi/2 + shipSpread*(float64(i)/float64(shipPoints-2)-0.5)
		p = append(p, geom.V(tip.X+radius*math.Cos(a), tip.Y+radius*math.Sin(a)))
	}
	return p
}

// spawnFormation fills the top of the world with enemies heading right.
func (d *Demo) spawnFormation() {
	e := d.cfg.Enemies
	width := (WorldW - float64(e.Cols+1)*e.Gap) / float64(e.Cols)
	radius := math.Min(e.Radius, width/2)

	d.enemies = d.enemies[:0]
	d.dir = 1
	for row := 0; row < e.Rows; row++ {
		tipY := WorldH - radius - e.Gap/2 - float64(row)*(radius+e.Gap)
		color := core.Palette[(row+d.wave)%len(core.Palette)]
		for col := 0; col < e.Cols; col++ {
			x := e.Gap + float64(col)*(width+e.Gap) + width/2
			enemy := physics.NewBodyWithPayload(ship(geom.V(x, tipY), radius),
				d.cfg.Physics.EnemyMass, color, roleEnemy, d.enemyReleased)
			d.st.Scene.AddBody(enemy)
			d.enemies = append(d.enemies, enemy)
		}
	}
	for _, s := range d.shots {
		if !s.IsRemoved() && s.Payload() == rolePlayerShot {
			d.bindShot(s)
		}
	}
}

func (d *Demo) enemyReleased(any) {
	if d.phase != PhasePlaying {
		return
	}
	d.score += d.cfg.Gameplay.PointsPerEnemy
}

// fire launches a shot from the player or from an enemy's tip.
func (d *Demo) fire(from *physics.Body) {
	speed := d.cfg.Physics.BulletSpeed
	var (
		pos   geom.Vector
		vel   geom.Vector
		tag   role
		color core.Color
	)
	if from == d.player {
		pos = from.Centroid().Add(geom.V(0, d.cfg.Player.Height/2+shotH))
		vel, tag, color = geom.V(0, speed), rolePlayerShot, core.ColorBrightGreen
	} else {
		pos = from.Shape()[0].Sub(geom.V(0, shotH))
		vel, tag, color = geom.V(0, -speed), roleEnemyShot, core.ColorBrightRed
	}

	shot := physics.NewBodyWithPayload(geom.Rectangle(pos, shotW, shotH),
		d.cfg.Physics.BulletMass, color, tag, nil)
	shot.SetVelocity(vel)
	d.st.Scene.AddBody(shot)
	d.shots = append(d.shots, shot)
	d.bindShot(shot)
}

func (d *Demo) bindShot(shot *physics.Body) {
	if shot.Payload() == roleEnemyShot {
		d.st.Scene.DestructiveCollision(shot, d.player)
		return
	}
	for _, e := range d.enemies {
		if !e.IsRemoved() {
			d.st.Scene.DestructiveCollision(shot, e)
		}
	}
}

// Step applies input and advances one tick.
func (d *Demo) Step(in core.InputFrame) core.DemoState {
	if in.Has(core.ActionRestart) && d.phase == PhaseGameOver {
		d.Reset(d.runtime)
		return d.state
	}
	if in.Has(core.ActionPause) && d.phase != PhaseGameOver {
		d.paused = !d.paused
	}
	if d.paused || d.phase == PhaseGameOver {
		d.state = d.snapshot()
		return d.state
	}

	d.steerPlayer(in)
	if d.cooldown > 0 {
		d.cooldown--
	}
	if in.Has(core.ActionFire) && d.cooldown == 0 {
		d.fire(d.player)
		d.cooldown = d.cfg.Player.Cooldown
	}

	d.marchFormation()
	d.enemyFire()

	d.st.Tick(d.runtime.Dt())
	d.clampPlayer()
	d.sweep()

	switch {
	case d.player.IsRemoved() || d.invaded():
		d.phase = PhaseGameOver
	case len(d.enemies) == 0:
		d.wave++
		d.score += d.cfg.Gameplay.WaveBonus
		d.spawnFormation()
	}

	d.state = d.snapshot()
	return d.state
}

func (d *Demo) steerPlayer(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		d.holdDir, d.holdLeft = -1, d.cfg.Player.HoldTicks
	case in.Has(core.ActionRight):
		d.holdDir, d.holdLeft = 1, d.cfg.Player.HoldTicks
	}
	if d.holdLeft > 0 {
		d.holdLeft--
		d.player.SetVelocity(geom.V(d.holdDir*d.cfg.Player.Speed, 0))
	} else {
		d.player.SetVelocity(geom.Zero)
	}
}

func (d *Demo) clampPlayer() {
	c := d.player.Centroid()
	half := d.cfg.Player.Width / 2
	x := core.ClampF(c.X, half, WorldW-half)
	if x != c.X {
		d.player.SetCentroid(geom.V(x, playerY))
		d.holdLeft = 0
	}
}

// marchFormation sets the enemies' velocity, reversing and dropping the
// whole formation by one row when any ship touches a side.
func (d *Demo) marchFormation() {
	if len(d.enemies) == 0 {
		return
	}
	hitEdge := false
	for _, e := range d.enemies {
		lo, hi := e.Shape().Bounds()
		if (d.dir < 0 && lo.X <= 0) || (d.dir > 0 && hi.X >= WorldW) {
			hitEdge = true
			break
		}
	}
	if hitEdge {
		d.dir = -d.dir
		drop := geom.V(0, -(d.cfg.Enemies.Radius + d.cfg.Enemies.Gap))
		for _, e := range d.enemies {
			e.SetCentroid(e.Centroid().Add(drop))
		}
	}

	speed := d.difficulty.Speed(d.cfg.Physics.EnemySpeed, d.score, d.st.Ticks)
	for _, e := range d.enemies {
		e.SetVelocity(geom.V(d.dir*speed, 0))
	}
}

func (d *Demo) enemyFire() {
	chance := d.difficulty.Rate(d.cfg.Enemies.FireChance, d.score, d.st.Ticks) * d.runtime.Dt()
	for _, e := range d.enemies {
		if d.st.Rand.Float64() < chance {
			d.fire(e)
		}
	}
}

// sweep forgets destroyed bodies and removes shots that left the world.
func (d *Demo) sweep() {
	live := d.enemies[:0]
	for _, e := range d.enemies {
		if !e.IsRemoved() {
			live = append(live, e)
		}
	}
	d.enemies = live

	shots := d.shots[:0]
	for _, s := range d.shots {
		if s.IsRemoved() {
			continue
		}
		if !d.st.Contains(s.Centroid(), 0) {
			s.Remove()
			continue
		}
		shots = append(shots, s)
	}
	d.shots = shots
}

func (d *Demo) invaded() bool {
	for _, e := range d.enemies {
		if e.Shape()[0].Y <= d.cfg.Enemies.LoseHeight {
			return true
		}
	}
	return false
}

func (d *Demo) snapshot() core.DemoState {
	lives := 1
	if d.phase == PhaseGameOver {
		lives = 0
	}
	return d.st.State(core.DemoState{
		Score:  d.score,
		Lives:  lives,
		Over:   d.phase == PhaseGameOver,
		Paused: d.paused,
	})
}

// Render draws ships and shots with role-specific glyphs.
func (d *Demo) Render(dst *core.Screen) {
	if d.st == nil {
		return
	}
	vp := d.st.Viewport(dst)
	vp.DrawLine(dst, geom.V(0, d.cfg.Enemies.LoseHeight), geom.V(WorldW, d.cfg.Enemies.LoseHeight), '┄', core.ColorRed)
	d.st.Draw(dst, func(b *physics.Body) rune {
		switch b.Payload() {
		case roleEnemy:
			return '▼'
		case rolePlayerShot, roleEnemyShot:
			return '│'
		default:
			return stage.Fill
		}
	})

	stage.HUD(dst,
		fmt.Sprintf("INVADERS  score %d  wave %d  enemies %d", d.score, d.wave+1, len(d.enemies)),
		stage.Counters(d.state))

	switch {
	case d.phase == PhaseGameOver:
		stage.Banner(dst, core.ColorBrightRed, "GAME OVER", fmt.Sprintf("score %d", d.score), "r: restart")
	case d.paused:
		stage.Banner(dst, core.ColorBrightYellow, "PAUSED")
	}
}

func (d *Demo) State() core.DemoState { return d.state }

// Close releases the scene.
func (d *Demo) Close() {
	d.phase = PhaseGameOver
	d.st.Close()
	d.st = nil
}

func init() {
	registry.Register("invaders", func() registry.Demo { return New() })
}
