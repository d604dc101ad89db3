package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duckhunt/internal/config"
	"github.com/vovakirdan/duckhunt/internal/core"
	"github.com/vovakirdan/duckhunt/internal/duckhunt"
	"github.com/vovakirdan/duckhunt/internal/platform/tui"
	"github.com/vovakirdan/duckhunt/internal/registry"
	"github.com/vovakirdan/duckhunt/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a round in the current terminal.

Controls:
  Mouse      - Move the reticle, left-click to shoot
  Arrows/WASD- Move the reticle
  Space/F    - Shoot
  P/Esc      - Pause
  R          - Restart (after the round ends)
  Q/Ctrl+C   - Quit

Examples:
  duckhunt play
  duckhunt play --seed 42
  duckhunt play --config ./my-duckhunt.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Reject a broken config up front rather than falling back mid-game.
	if flagConfig != "" {
		if _, err := config.LoadDuckHunt(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	duckhunt.SetConfigPath(flagConfig)

	// Terminal size, with sane defaults for non-terminal stdout
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(duckhunt.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
