package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyarcade/internal/registry"
	"github.com/vovakirdan/polyarcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [demo]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the specified demo, or a summary
of every demo that has scores when no demo is given.

Examples:
  polyarcade scores
  polyarcade scores breakout
  polyarcade scores invaders --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every score of the demo")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	demoID := args[0]
	if !registry.Exists(demoID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
		fmt.Fprintln(os.Stderr, "Run 'polyarcade list' to see available demos.")
		os.Exit(1)
	}

	if flagClearScores {
		if err := store.ClearScores(demoID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", demoID)
		return
	}

	printTopScores(store, demoID)
}

func printTopScores(store *storage.Store, demoID string) {
	demo, err := registry.Create(demoID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating demo: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(demoID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", demo.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'polyarcade play %s' to set the first high score!\n", demoID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetDemoStats(demoID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Played: %d  Average: %.1f\n", stats.HighScore, stats.PlayCount, stats.AvgScore)
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.GetAllDemoStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %6s  %8s  %9s  %s\n", "Demo", "Played", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %6s  %8s  %9s  %s\n", "----", "------", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-10s  %6d  %8d  %9.1f  %s\n",
			id, s.PlayCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
