package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lambdooz/internal/registry"
	"github.com/vovakirdan/lambdooz/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores and overall stats for a mode.

Examples:
  lambdooz scores marathon
  lambdooz scores timed --limit 25
  lambdooz scores timed --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'lambdooz list')", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all %s scores.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'lambdooz play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-6s  %-10s  %s\n",
		"Rank", "Player", "Score", "Level", "Clears", "Difficulty", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-5s  %-6s  %-10s  %s\n",
		"----", "------", "-----", "-----", "------", "----------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-12s  %-8d  %-5d  %-6d  %-10s  %s\n",
			i+1, e.Player, e.Score, e.Level, e.Clears, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f  Total clears: %d\n",
			st.GamesCount, st.HighScore, st.AvgScore, st.TotalClears)
	}
	return nil
}
