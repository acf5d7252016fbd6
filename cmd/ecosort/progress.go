package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecosort/ecosort/internal/storage"
)

var (
	flagResetProgress bool
	flagClearRuns     bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset lifetime progress",
	Long: `Display the lifetime progress record, or wipe parts of it.

--reset zeroes the lifetime totals (high score, items sorted, CO2 saved)
and re-arms the tutorial tip. --clear-runs deletes the run history but
leaves lifetime totals intact.

Examples:
  ecosort progress
  ecosort progress --reset
  ecosort progress --clear-runs`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagResetProgress, "reset", false, "Reset lifetime progress to zero")
	progressCmd.Flags().BoolVar(&flagClearRuns, "clear-runs", false, "Delete the run history")
}

func runProgress(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
	}

	if flagResetProgress {
		if err := store.ResetProgress(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting progress: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Lifetime progress reset.")
	}

	progress, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading progress: %v\n", err)
		os.Exit(1)
	}

	tutorial := "pending"
	if progress.CompletedTutorial {
		tutorial = "done"
	}

	fmt.Println("Lifetime progress:")
	fmt.Println()
	fmt.Printf("  High Score:    %d\n", progress.HighScore)
	fmt.Printf("  Items Sorted:  %d\n", progress.TotalItemsSorted)
	fmt.Printf("  CO2 Saved:     %.1f kg\n", progress.TotalCO2Saved)
	fmt.Printf("  Level:         %d\n", progress.Level)
	fmt.Printf("  Tutorial:      %s\n", tutorial)
}
