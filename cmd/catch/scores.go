package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treat-catcher/internal/config"
	"github.com/vovakirdan/treat-catcher/internal/games/catch"
	"github.com/vovakirdan/treat-catcher/internal/platform/tui"
	"github.com/vovakirdan/treat-catcher/internal/records"
	"github.com/vovakirdan/treat-catcher/internal/storage"
)

var (
	flagInteractive  bool
	flagClearHistory bool
	flagResetRecords bool
	flagAllRuns      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and recent runs",
	Long: `Display the current record (leaderboard or best score) and the
run history kept in the local database.

Examples:
  catch scores
  catch scores --interactive
  catch scores --remote https://example.com/records/catch
  catch scores --all
  catch scores --clear-history
  catch scores --reset-records`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClearHistory, "clear-history", false, "Delete the local run history (the record is kept)")
	scoresCmd.Flags().BoolVar(&flagResetRecords, "reset-records", false, "Delete the local best score and leaderboard (the history is kept)")
	scoresCmd.Flags().BoolVar(&flagAllRuns, "all", false, "List every recorded run instead of the most recent ones")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := openLogger("catch-scores")
	defer closeLog()

	keeper, store := openRecords(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	if flagClearHistory {
		if store == nil {
			return fmt.Errorf("scores database is not available")
		}
		if err := store.ClearScores(catch.GameID); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagResetRecords {
		if store == nil {
			return fmt.Errorf("scores database is not available")
		}
		if err := resetRecords(context.Background(), store); err != nil {
			return err
		}
		if cfg.Records.Backend == config.BackendRemote {
			fmt.Println("Local records reset. The remote leaderboard is not changed.")
		} else {
			fmt.Println("Records reset.")
		}
		return nil
	}

	if flagAllRuns {
		if store == nil {
			return fmt.Errorf("scores database is not available")
		}
		runs, err := store.AllScores(catch.GameID)
		if err != nil {
			return err
		}
		printRuns("All runs", runs)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(keeper, store, logger, width, height)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	sc := tui.LoadScores(ctx, keeper, store)
	if sc.Err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", sc.Err)
	}

	printScores(cfg, sc)
	return nil
}

func printScores(cfg config.CatchConfig, sc tui.Scores) {
	fmt.Println("Treat Catcher")
	fmt.Println()

	if cfg.Records.Policy == config.PolicyBest {
		fmt.Printf("Best: %d\n", sc.Standing.Best)
	} else {
		printBoard(sc.Standing.Board)
	}

	fmt.Println()
	if !printRuns("Recent runs", sc.Recent) {
		return
	}

	if st := sc.Stats; st != nil && st.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  High: %d  Average: %.1f\n", st.GamesCount, st.HighScore, st.AvgScore)
		if !st.LastPlayed.IsZero() {
			fmt.Printf("Last played: %s\n", st.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
}

func printBoard(board []records.Entry) {
	fmt.Println("Leaderboard")
	if len(board) == 0 {
		fmt.Println("  No scores yet.")
		return
	}
	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "----", "-----")
	for i, e := range board {
		fmt.Printf("  %-4d  %-16s  %d\n", i+1, e.Name, e.Score)
	}
}

// printRuns lists runs and reports whether there were any.
func printRuns(title string, runs []storage.ScoreEntry) bool {
	fmt.Println(title)
	if len(runs) == 0 {
		fmt.Println("  No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catch play' to set the first score!")
		return false
	}
	fmt.Printf("  %-16s  %-6s  %s\n", "Player", "Score", "Date")
	fmt.Printf("  %-16s  %-6s  %s\n", "------", "-----", "----")
	for _, e := range runs {
		fmt.Printf("  %-16s  %-6d  %s\n", e.Player, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return true
}

// resetRecords deletes the local best score and leaderboard documents.
func resetRecords(ctx context.Context, store *storage.Store) error {
	for _, key := range []string{records.KeyBest, records.KeyLeaderboard} {
		if err := store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
