package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecosort/ecosort/internal/config"
	"github.com/ecosort/ecosort/internal/core"
	"github.com/ecosort/ecosort/internal/engine"
	"github.com/ecosort/ecosort/internal/platform/tui"
	"github.com/ecosort/ecosort/internal/registry"
	"github.com/ecosort/ecosort/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode. Defaults to classic.

Controls:
  1/R        - Recycle bin
  2/T        - Trash bin
  3/E        - Reuse bin
  Space      - Collect power-up
  P          - Pause
  Shift+R    - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, gentler speed ramp
  normal - Default values
  hard   - Fewer lives, faster ramp, more special items

Examples:
  ecosort play
  ecosort play zen
  ecosort play classic --difficulty hard
  ecosort play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// setupGame loads config and storage and wires them into the engine.
// The returned store may be nil when the database cannot be opened.
func setupGame() *storage.Store {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		gameCfg = config.Default()
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if store != nil {
		engine.Configure(gameCfg, store)
	} else {
		engine.Configure(gameCfg, nil)
	}
	return store
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "classic"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ecosort list' to see available modes.")
		os.Exit(1)
	}

	store := setupGame()

	game, err := registry.Create(gameID)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
