package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/registry"
	"github.com/vovakirdan/polyarcade/internal/storage"
)

var (
	flagSimTicks  int
	flagSimEvery  int
	flagSimFire   int
	flagSimRender bool
	flagSimNoSave bool
)

var simCmd = &cobra.Command{
	Use:   "sim <demo>",
	Short: "Run a demo headless and record the run",
	Long: `Step a demo without a terminal as fast as possible. Progress is logged
every --every ticks, the run stops early when the demo is over, and a
summary is stored in the scores database (see the scoreboard's sim runs).

Examples:
  polyarcade sim nbodies --ticks 3600
  polyarcade sim bounce --seed 7 --fire-every 60 --render
  polyarcade sim damping --log-level debug --every 10 --no-save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 60, "Log progress every N ticks (0 = only the summary)")
	simCmd.Flags().IntVar(&flagSimFire, "fire-every", 0, "Press fire every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame to stdout")
	simCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not record the run in the database")
}

// simResult is the outcome of a headless run.
type simResult struct {
	ticks    int
	state    core.DemoState
	duration time.Duration
}

// simulate steps demo up to ticks times, pressing fire every fireEvery ticks,
// and calls progress every `every` ticks.
func simulate(demo registry.Demo, cfg core.RuntimeConfig, ticks, every, fireEvery int, progress func(tick int, st core.DemoState)) simResult {
	start := time.Now()
	demo.Reset(cfg)

	var res simResult
	for res.ticks < ticks {
		var in core.InputFrame
		if fireEvery > 0 && res.ticks%fireEvery == 0 {
			in.Set(core.ActionFire)
		}
		res.state = demo.Step(in)
		res.ticks++

		if every > 0 && res.ticks%every == 0 && progress != nil {
			progress(res.ticks, res.state)
		}
		if res.state.Over {
			break
		}
	}
	res.duration = time.Since(start)
	return res
}

func runSim(_ *cobra.Command, args []string) error {
	demoID := args[0]
	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q, run 'polyarcade list' to see available demos", demoID)
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	configureDemo(demoID)
	demo, err := registry.Create(demoID)
	if err != nil {
		return err
	}
	defer demo.Close()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	log := logger.With("demo", demoID, "seed", cfg.Seed)
	log.Info("simulation started", "ticks", flagSimTicks, "fps", cfg.TickRate)

	res := simulate(demo, cfg, flagSimTicks, flagSimEvery, flagSimFire, func(tick int, st core.DemoState) {
		log.Debug("progress",
			"tick", tick,
			"bodies", st.Bodies,
			"forces", st.Forces,
			"kinetic", fmt.Sprintf("%.1f", st.Kinetic),
			"score", st.Score,
		)
	})

	log.Info("simulation finished",
		"ticks", res.ticks,
		"simulated", time.Duration(float64(res.ticks)*cfg.Dt()*float64(time.Second)).Round(time.Millisecond),
		"elapsed", res.duration.Round(time.Millisecond),
		"bodies", res.state.Bodies,
		"forces", res.state.Forces,
		"kinetic", fmt.Sprintf("%.1f", res.state.Kinetic),
		"score", res.state.Score,
		"over", res.state.Over,
	)

	if flagSimRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		demo.Render(screen)
		fmt.Println(screen.String())
	}

	if flagSimNoSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveSimRun(storage.SimRun{
		DemoID:   demoID,
		Seed:     cfg.Seed,
		Ticks:    res.ticks,
		Bodies:   res.state.Bodies,
		Forces:   res.state.Forces,
		Kinetic:  res.state.Kinetic,
		Score:    res.state.Score,
		Duration: res.duration,
	})
	if err != nil {
		return err
	}
	log.Debug("run recorded", "id", id)
	return nil
}
