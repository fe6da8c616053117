package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

var (
	flagHistory int
	flagStats   bool
	flagJSON    bool
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Show the best wins (gameplay.leaderboard_top, 7 by default), best first,
as "name (difficulty) - score".

Examples:
  neonpong scores
  neonpong scores --json
  neonpong scores --history 20
  neonpong scores --stats`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagHistory, "history", 0, "Also list the N most recent matches")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Also show statistics per difficulty")
	scoresCmd.Flags().BoolVar(&flagJSON, "json", false, "Print every leaderboard entry in its stored JSON layout")
	scoresCmd.Flags().BoolVar(&flagClear, "clear-history", false, "Delete the match history (the leaderboard is kept)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(dbPath())
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Match history cleared.")
		return nil
	}

	board := leaderboard.New(store.Leaderboard(), logger)

	if flagJSON {
		data, err := leaderboard.Encode(board.All())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	top := board.Top(leaderboard.Size(gameCfg.Gameplay.LeaderboardTop))
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ff"))
	fmt.Fprintln(out, title.Render("LEADERBOARD"))
	if len(top) == 0 {
		fmt.Fprintln(out, "No wins recorded yet. Beat the AI to get on the board!")
	}
	for i, e := range top {
		fmt.Fprintf(out, "%d. %s\n", i+1, e)
	}

	if flagStats {
		fmt.Fprintln(out)
		if err := printStats(out, store); err != nil {
			return err
		}
	}
	if flagHistory > 0 {
		fmt.Fprintln(out)
		if err := printHistory(out, store, flagHistory); err != nil {
			return err
		}
	}
	return nil
}

func printStats(out io.Writer, store *storage.Store) error {
	stats, err := store.StatsByDifficulty()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Difficulty", "Played", "Won", "Win rate", "Best margin")
	for _, name := range names {
		s := stats[name]
		t.Row(name, fmt.Sprint(s.Played), fmt.Sprint(s.Wins), fmt.Sprintf("%.0f%%", s.WinRate()*100), fmt.Sprint(s.BestMargin))
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

func printHistory(out io.Writer, store *storage.Store, limit int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(out, "No matches played yet.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("When", "Difficulty", "Winner", "Score", "Duration")
	for _, m := range matches {
		dur := time.Duration(m.DurationMS) * time.Millisecond
		t.Row(
			m.CreatedAt.Local().Format("Jan 02 15:04"),
			m.Difficulty,
			m.Winner,
			fmt.Sprintf("%d : %d", m.PlayerScore, m.AIScore),
			dur.Round(time.Second).String(),
		)
	}
	fmt.Fprintln(out, t.Render())
	return nil
}
