// catch is a treat-catching arcade game for the terminal and the desktop.
//
// Usage:
//
//	catch play               - Play in the terminal
//	catch window             - Play in a desktop window
//	catch scores             - Show the leaderboard and recent runs
//	catch serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.catch/scores.db)
//	--log <path>        - Set log file (default: ~/.catch/catch.log)
//	--policy <name>     - Record policy: best or leaderboard
//	--remote <url>      - Keep the leaderboard on a record service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagDebug      bool
	flagPolicy     string
	flagRemote     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch",
	Short: "Treat Catcher - help Sammie catch the falling treats",
	Long: `Treat Catcher is a small arcade game. Slide the cat left and right
to catch the treats falling from the sky. Treats fall faster and more
often as the score grows, and the run ends as soon as one hits the ground.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - Show the leaderboard and recent runs
  serve    - Start SSH server for remote play

Examples:
  catch play --name Mia
  catch window --difficulty hard
  catch play --policy best
  catch scores
  catch serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.catch/catch.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagPolicy, "policy", "", "Record policy: best or leaderboard (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagRemote, "remote", "", "Record service URL; selects the remote leaderboard backend")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
