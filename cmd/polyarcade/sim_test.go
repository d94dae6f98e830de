package main

import (
	"testing"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/registry"
)

func TestSimulateIsDeterministic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	run := func() simResult {
		demo, err := registry.Create("nbodies")
		if err != nil {
			t.Fatal(err)
		}
		defer demo.Close()
		cfg := core.DefaultConfig()
		cfg.Seed = 11
		return simulate(demo, cfg, 120, 0, 0, nil)
	}

	a, b := run(), run()
	if a.ticks != 120 {
		t.Fatalf("ticks = %d, want 120", a.ticks)
	}
	if a.state.Kinetic != b.state.Kinetic || a.state.Bodies != b.state.Bodies {
		t.Errorf("same seed gave different runs: %+v vs %+v", a.state, b.state)
	}
}

func TestSimulateProgressAndFire(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	demo, err := registry.Create("bounce")
	if err != nil {
		t.Fatal(err)
	}
	defer demo.Close()

	cfg := core.DefaultConfig()
	cfg.Seed = 3

	var calls []int
	res := simulate(demo, cfg, 100, 25, 30, func(tick int, _ core.DemoState) {
		calls = append(calls, tick)
	})

	if len(calls) != 4 || calls[0] != 25 || calls[3] != 100 {
		t.Errorf("progress ticks = %v, want every 25", calls)
	}
	// One star to start with plus one per fire at ticks 0, 30, 60 and 90.
	if got := res.state.Bodies; got != 5 {
		t.Errorf("bodies = %d, want 5", got)
	}
}

func TestEveryDemoIsRegistered(t *testing.T) {
	for _, id := range []string{"bounce", "nbodies", "damping", "gravity", "pacman", "swing", "breakout", "invaders"} {
		if !registry.Exists(id) {
			t.Errorf("demo %q not registered", id)
		}
	}
}
