package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treat-catcher/internal/platform/gui"
)

var (
	flagWindowName  string
	flagWindowScale float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play there.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Enter      - Start a run (name prompt)
  Esc        - Quit

On touch screens, hold the buttons in the bottom corners to move.

Examples:
  catch window
  catch window --name Mia --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowName, "name", "", "Player name (prefills the name prompt)")
	windowCmd.Flags().Float64Var(&flagWindowScale, "scale", 1, "Window size relative to the 800x600 field")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := openLogger("catch-window")
	defer closeLog()

	keeper, store := openRecords(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	err = gui.Run(gui.Options{
		Config:   cfg,
		Keeper:   keeper,
		Store:    store,
		Logger:   logger,
		Name:     flagWindowName,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Scale:    flagWindowScale,
	})
	if err != nil {
		return fmt.Errorf("error running window: %w", err)
	}
	return nil
}
