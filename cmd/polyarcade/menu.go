package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyarcade/internal/platform/tui"
	"github.com/vovakirdan/polyarcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start polyarcade with a demo picker menu",
	Long: `Start polyarcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a demo.
Leaving a demo (Esc when paused or over) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select demo
  Tab          - Scoreboard
  Q            - Quit

Examples:
  polyarcade menu
  polyarcade menu --fps 30
  polyarcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		configureDemo(result.DemoID)
		demo, err := registry.Create(result.DemoID)
		if err != nil {
			logger.Error("cannot create demo", "demo", result.DemoID, "error", err)
			continue
		}

		// Each run gets a fresh seed unless one was pinned on the command line.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(demo, store, cfg); err != nil {
			logger.Error("demo failed", "demo", result.DemoID, "error", err)
		}
	}
}
