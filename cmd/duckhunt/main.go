// duckhunt is a terminal shooting gallery: ducks cross the screen on
// wavy flight paths and you knock them down with the mouse or keyboard
// before the clock, your ammo or your lives run out.
//
// Usage:
//
//	duckhunt play             - Play in the current terminal
//	duckhunt serve            - Start SSH server for remote play
//	duckhunt scores           - Show high scores and round history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.duckhunt/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/duckhunt/internal/duckhunt"
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
	Use:   "duckhunt",
	Short: "Duck Hunt - A shooting gallery in your terminal",
	Long: `Duck Hunt is a terminal shooting gallery. Ducks fly across the
screen on sinusoidal paths; move the reticle with the mouse or arrow
keys and shoot them down before the round timer, your ammo or your
lives run out.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores and round history

Examples:
  duckhunt play
  duckhunt play --config ./my-duckhunt.yaml
  duckhunt serve --ssh :2222
  duckhunt scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duckhunt/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
