package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/agent8/internal/games/agent8"
	"github.com/vovakirdan/agent8/internal/storage"
)

var (
	flagLimit  int
	flagMine   bool
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs and overall stats.

Examples:
  agent8 scores
  agent8 scores --limit 25
  agent8 scores --mine --player ada
  agent8 scores --recent
  agent8 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagMine, "mine", false, "Only runs by --player")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(agent8.ID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	var runs []storage.Run
	switch {
	case flagMine:
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	case flagRecent:
		runs, err = store.RecentRuns(flagLimit)
	default:
		runs, err = store.TopRuns(agent8.ID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Agent8")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'agent8 play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "Rank", "Score", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		secs := r.Ticks / 60
		fmt.Printf("  %-4d  %-8d  %-12s  %-6s  %s\n",
			i+1, r.Score, player, fmt.Sprintf("%d:%02d", secs/60, secs%60), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(agent8.ID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Average: %.0f   Runs: %d\n", stats.HighScore, stats.AvgScore, stats.Runs)
	}
	return nil
}
