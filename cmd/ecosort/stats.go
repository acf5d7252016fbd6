package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecosort/ecosort/internal/storage"
)

var flagStatsMode string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime stats and best runs",
	Long: `Display lifetime totals and the top 10 runs.

Examples:
  ecosort stats
  ecosort stats --mode classic
  ecosort stats --mode zen`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsMode, "mode", "", "Filter runs by mode (classic, zen); empty = all modes")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	progress, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading progress: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(flagStatsMode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("EcoSort Stats")
	fmt.Println()
	fmt.Printf("  High Score:    %d\n", progress.HighScore)
	fmt.Printf("  Items Sorted:  %d\n", progress.TotalItemsSorted)
	fmt.Printf("  CO2 Saved:     %.1f kg\n", progress.TotalCO2Saved)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ecosort play' to record the first run!")
		return
	}

	label := flagStatsMode
	if label == "" {
		label = "all modes"
	}
	fmt.Printf("Top runs (%s):\n", label)
	fmt.Println()

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-8s  %-5s  %s\n",
		"Rank", "Mode", "Score", "Items", "CO2 kg", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %-8s  %-5s  %s\n",
		"----", "----", "-----", "-----", "------", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-6d  %-7d  %-8.1f  %-5d  %s\n",
			i+1, entry.Mode, entry.Score, entry.ItemsSorted, entry.CO2Saved, entry.LevelReached, dateStr)
	}
}
