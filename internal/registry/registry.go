// Package registry keeps the set of playable physics demos. Demos register a
// factory from their init function so the command line and the menus can list
// and build them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/polyarcade/internal/core"
)

// Demo is a game or toy built on a physics scene. Implementations hold no
// terminal state; the platform feeds input, drives ticks and shows the screen.
type Demo interface {
	// ID is the short name used on the command line and in the score table.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset rebuilds the scene. It is called before the first Step and again
	// on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies input and advances the scene by one fixed tick.
	Step(in core.InputFrame) core.DemoState

	// Render draws the scene into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the state reported by the last Step.
	State() core.DemoState

	// Close releases the scene.
	Close()
}

// DemoInfo describes a registered demo.
type DemoInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, un-Reset demo.
type Factory func() Demo

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a demo factory. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered demo sorted by id.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		out = append(out, DemoInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds the demo registered under id.
func Create(id string) (Demo, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
