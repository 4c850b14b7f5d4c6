package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treat-catcher/internal/core"
	"github.com/vovakirdan/treat-catcher/internal/platform/tui"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  Enter      - Start a run (name prompt)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower treats that start further apart
  normal - Default settings
  hard   - Faster treats, more often
  fixed  - No progression, stays at the base speed and interval

Examples:
  catch play
  catch play --name Mia
  catch play --difficulty hard
  catch play --policy best
  catch play --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (prefills the name prompt)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := openLogger("catch")
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	keeper, store := openRecords(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	err = tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Keeper: keeper,
		Store:  store,
		Logger: logger,
		Name:   flagName,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
