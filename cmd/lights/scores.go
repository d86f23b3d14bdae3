package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lights/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show results",
	Long: `Display the top 10 results of a level, or per-level stats when no
level is given.

Examples:
  lights scores
  lights scores small
  lights scores small --all
  lights scores --recent 5
  lights scores custom-7x3 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagScoresAll   bool
	flagScoresClear bool
	flagRecent      int
)

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every result of the level")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the results of the level")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N latest results across levels")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRecent > 0:
		err = printRecent(store, flagRecent)
	case len(args) == 0 && (flagScoresAll || flagScoresClear):
		err = errors.New("--all and --clear need a level")
	case len(args) == 0:
		err = printLevelStats(store)
	case flagScoresClear:
		if err = store.ClearResults(args[0]); err == nil {
			fmt.Printf("Cleared results of %s\n", args[0])
		}
	default:
		err = printTopResults(store, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleRows).
		Headers(headers...)
}

func printTopResults(store *storage.Store, levelID string) error {
	var results []storage.ResultEntry
	var err error
	title := "Top results"
	if flagScoresAll {
		title = "All results"
		results, err = store.AllResults(levelID)
	} else {
		results, err = store.TopResults(levelID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", title, levelID)
	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lights play %s' to set the first score!\n", levelID)
		return nil
	}

	t := newTable("Rank", "Score", "Moves", "Min", "Size", "Date")
	for i, r := range results {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(r.Score), strconv.Itoa(r.Moves),
			strconv.Itoa(r.MinMoves), sizeLabel(r), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t.String())
	fmt.Printf("\nBest: %d\n", results[0].Score)
	return nil
}

func printRecent(store *storage.Store, limit int) error {
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	t := newTable("Date", "Level", "Score", "Moves", "Min", "Size")
	for _, r := range results {
		t.Row(r.CreatedAt.Format("2006-01-02 15:04"), r.LevelID, strconv.Itoa(r.Score),
			strconv.Itoa(r.Moves), strconv.Itoa(r.MinMoves), sizeLabel(r))
	}
	fmt.Println(t.String())
	return nil
}

func sizeLabel(r storage.ResultEntry) string {
	size := fmt.Sprintf("%dx%d", r.Width, r.Height)
	if r.GoThrough {
		size += " wrap"
	}
	return size
}

func printLevelStats(store *storage.Store) error {
	stats, err := store.GetAllLevelsStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := newTable("Level", "Solved", "Best", "Avg", "Fewest moves", "Last played")
	for _, id := range ids {
		s := stats[id]
		t.Row(id, strconv.Itoa(s.Solved), strconv.Itoa(s.HighScore),
			fmt.Sprintf("%.0f", s.AvgScore), strconv.Itoa(s.BestMoves),
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println(t.String())
	return nil
}
