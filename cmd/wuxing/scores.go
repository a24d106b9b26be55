package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wuxing-arcade/internal/games/wuxing"
	"github.com/vovakirdan/wuxing-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and aggregated stats.

Examples:
  wuxing scores
  wuxing scores --limit 20
  wuxing scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	gameID := wuxing.GameID
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", gameTitle(gameID))
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'wuxing play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-7s  %-6s  %-24s  %s\n", "Rank", "Player", "Score", "Shots", "End", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-7s  %-6s  %-24s  %s\n", "----", "------", "-----", "-----", "---", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-10s  %-7d  %-6d  %-24s  %s\n",
			i+1, player, entry.Score, entry.Shots, entry.EndReason, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.1f  Shots: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalShots)

	reasons := make([]string, 0, len(stats.EndReasons))
	for r := range stats.EndReasons {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(out, "  %-24s %d\n", r, stats.EndReasons[r])
	}
	return nil
}
