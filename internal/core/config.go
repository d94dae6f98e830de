package core

import "time"

// RuntimeConfig is handed to a demo on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns available to the demo
	ScreenH  int   // terminal rows available to the demo
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed, 0 picks one from the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Dt returns the fixed timestep in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// Interval returns the wall-clock time between ticks.
func (c RuntimeConfig) Interval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// DemoState is what a demo reports back to the platform after each tick.
type DemoState struct {
	Score  int
	Lives  int
	Over   bool
	Won    bool
	Paused bool
	Bodies int // live bodies in the scene
	Forces int // live force generators in the scene

	Kinetic float64 // translational kinetic energy of the movable bodies
}
