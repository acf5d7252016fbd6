// ecosort is a terminal waste-sorting game: catch falling items and drop
// them into the right bin before they hit the ground.
//
// Usage:
//
//	ecosort play [mode]      - Play a mode directly (classic, zen)
//	ecosort menu             - Start menu to pick a mode interactively
//	ecosort list             - List available modes
//	ecosort stats            - Show lifetime stats and best runs
//	ecosort progress         - Show or reset lifetime progress
//	ecosort serve            - Start SSH server for remote play
//	ecosort config           - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 20)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.ecosort/progress.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the engine to register game modes
	_ "github.com/ecosort/ecosort/internal/engine"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecosort",
	Short: "EcoSort - Sort falling waste in your terminal",
	Long: `EcoSort is a terminal game about sorting waste. Items fall from the
top of the screen; send each one to the recycle, trash, or reuse bin
before it hits the ground.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  stats    - Lifetime stats and best runs
  progress - Show or reset lifetime progress
  serve    - Start SSH server for remote play
  config   - Print the default config YAML

Examples:
  ecosort play
  ecosort play zen
  ecosort menu
  ecosort stats --mode classic
  ecosort serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ecosort/progress.db", "Path to progress database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
