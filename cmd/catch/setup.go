package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-catcher/internal/config"
	"github.com/vovakirdan/treat-catcher/internal/records"
	"github.com/vovakirdan/treat-catcher/internal/storage"
)

// loadConfig loads the game config and applies the difficulty preset and
// the record flags on top of it.
func loadConfig() (config.CatchConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CatchConfig{}, err
	}

	cfg, err := config.LoadCatch(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyCatchPreset(&cfg, preset)

	if flagPolicy != "" {
		cfg.Records.Policy = flagPolicy
	}
	if flagRemote != "" {
		cfg.Records.Backend = config.BackendRemote
		cfg.Records.Remote.URL = flagRemote
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openLogger opens the log file. Frontends own the terminal, so nothing is
// logged to stdout; if the file cannot be opened logging is discarded.
func openLogger(prefix string) (*log.Logger, func()) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	path := config.ExpandPath(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	} else if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		w = f
		closeFn = func() { f.Close() } //nolint:errcheck
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// openRecords opens the scores database and builds the record keeper on it.
// The game still works without the database: history is skipped and records
// only live for the session.
func openRecords(cfg config.CatchConfig, logger *log.Logger) (records.Keeper, *storage.Store) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return records.New(cfg.Records, nil, logger), nil
	}
	return records.New(cfg.Records, store, logger), store
}
