package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/platform/tui"
	"github.com/vovakirdan/polyarcade/internal/registry"
	"github.com/vovakirdan/polyarcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Play a demo",
	Long: `Start the specified demo.

Controls:
  Arrows/WASD  - Move, steer or aim
  Space        - Fire, launch or shoot the tongue
  Enter        - Next level (swing)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options (breakout, invaders):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  polyarcade play bounce
  polyarcade play breakout --difficulty easy
  polyarcade play nbodies --seed 42
  polyarcade play swing --config ./my-levels.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// runtimeConfig sizes the demo to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil with a warning so
// demos still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	demoID := args[0]

	if !registry.Exists(demoID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
		fmt.Fprintln(os.Stderr, "Run 'polyarcade list' to see available demos.")
		os.Exit(1)
	}

	configureDemo(demoID)
	demo, err := registry.Create(demoID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(demo, store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
}
