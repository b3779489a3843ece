package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paraglider/internal/games/glider"
	"github.com/vovakirdan/paraglider/internal/platform/tui"
	"github.com/vovakirdan/paraglider/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  paraglider scores
  paraglider scores --limit 20
  paraglider scores --interactive
  paraglider scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(glider.ID); err != nil {
			fatal("clearing scores: %v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, glider.ID, "Paraglider", width, height); err != nil {
			fatal("running scoreboard: %v", err)
		}
		return
	}

	scores, err := store.TopScores(glider.ID, flagScoresLimit)
	if err != nil {
		fatal("retrieving scores: %v", err)
	}

	fmt.Println("High Scores - Paraglider")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'paraglider play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Thermals", "Ended by", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-8s  %s\n", "----", "-----", "-----", "--------", "--------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-7d  %-8d  %-8s  %s\n",
			i+1, e.Score, e.Ticks, e.Thermals, e.EndReason, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(glider.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Thermals: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalThermals)
	}
}
