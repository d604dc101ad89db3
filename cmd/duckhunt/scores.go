package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duckhunt/internal/duckhunt"
	"github.com/vovakirdan/duckhunt/internal/platform/tui"
	"github.com/vovakirdan/duckhunt/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and round history",
	Long: `Display the top 10 high scores and round statistics.

With --interactive, opens a browsable scoreboard with score and
round-history tabs.

Examples:
  duckhunt scores
  duckhunt scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a TUI")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, duckhunt.GameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(duckhunt.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Duck Hunt")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'duckhunt play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(duckhunt.GameID)
	if err != nil || stats.RoundsCount == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Rounds played: %d\n", stats.RoundsCount)
	fmt.Printf("Best score:    %d\n", stats.HighScore)
	fmt.Printf("Accuracy:      %.0f%%\n", stats.Accuracy()*100)

	if reasons, err := store.EndReasonCounts(duckhunt.GameID); err == nil && len(reasons) > 0 {
		fmt.Printf("Ended by:      time up %d, out of ammo %d, no lives %d\n",
			reasons["time_up"], reasons["out_of_ammo"], reasons["no_lives"])
	}
}
