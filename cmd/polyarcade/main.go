// polyarcade runs small physics toys and arcade games in the terminal.
//
// Usage:
//
//	polyarcade list              - List available demos
//	polyarcade play <demo>       - Play a demo
//	polyarcade menu              - Pick demos from an interactive menu
//	polyarcade serve             - Start SSH server for remote play
//	polyarcade scores [demo]     - Show high scores
//	polyarcade sim <demo>        - Run a demo headless and record the run
//	polyarcade config <demo>     - Print the default config of a demo
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.polyarcade/scores.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyarcade/internal/config"
	"github.com/vovakirdan/polyarcade/internal/demos/bounce"
	"github.com/vovakirdan/polyarcade/internal/demos/breakout"
	"github.com/vovakirdan/polyarcade/internal/demos/damping"
	"github.com/vovakirdan/polyarcade/internal/demos/gravity"
	"github.com/vovakirdan/polyarcade/internal/demos/invaders"
	"github.com/vovakirdan/polyarcade/internal/demos/nbodies"
	"github.com/vovakirdan/polyarcade/internal/demos/pacman"
	"github.com/vovakirdan/polyarcade/internal/demos/swing"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "polyarcade",
	Short: "Polyarcade - physics toys and games in your terminal",
	Long: `Polyarcade runs 2D rigid-body physics demos in the terminal: bouncing
stars, gravitating polygons, damped springs and a few games built on the
same engine.

Available commands:
  list     - Show all available demos
  play     - Play a specific demo directly
  menu     - Interactive demo picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a demo headless
  config   - Print a demo's default config

Examples:
  polyarcade list
  polyarcade play swing
  polyarcade play breakout --difficulty hard
  polyarcade sim nbodies --ticks 3600 --seed 7
  polyarcade config invaders > invaders.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "polyarcade",
			Level:           level,
		})

		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.polyarcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom demo config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// configureDemo points the demo about to be created at the --config file
// and the --difficulty preset. Demos without difficulty ignore the preset.
func configureDemo(demoID string) {
	switch demoID {
	case "bounce":
		bounce.SetConfigPath(flagConfig)
	case "nbodies":
		nbodies.SetConfigPath(flagConfig)
	case "damping":
		damping.SetConfigPath(flagConfig)
	case "gravity":
		gravity.SetConfigPath(flagConfig)
	case "pacman":
		pacman.SetConfigPath(flagConfig)
	case "swing":
		swing.SetConfigPath(flagConfig)
	case "breakout":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
	case "invaders":
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(flagDifficulty)
	}
}
