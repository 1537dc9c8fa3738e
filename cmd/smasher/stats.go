package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asteroid-smasher/internal/smash"
	"github.com/vovakirdan/asteroid-smasher/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated statistics",
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetGameStats(smash.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics - %s\n", smash.Title)
	fmt.Println()
	fmt.Printf("  %-14s %d\n", "Rounds scored", stats.GamesCount)
	fmt.Printf("  %-14s %d\n", "High score", stats.HighScore)
	fmt.Printf("  %-14s %.1f\n", "Average", stats.AvgScore)
	fmt.Printf("  %-14s %d\n", "Total smashed", stats.TotalScore)

	last := "never"
	if !stats.LastPlayed.IsZero() {
		last = stats.LastPlayed.Format("2006-01-02 15:04")
	}
	fmt.Printf("  %-14s %s\n", "Last played", last)
}
