package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/scoring"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Store kinds accepted by --store.
const (
	storeSQLite = "sqlite"
	storeFile   = "file"
	storeNone   = "none"
)

// newLogger builds the logger for a command. Output goes to w unless
// --log-file is set.
func newLogger(w io.Writer) (*log.Logger, io.Closer, error) {
	return logging.New(w, logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "flappy",
	})
}

// loadConfig resolves --config and --difficulty.
func loadConfig() (config.FlappyConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	return config.Load(flagConfig, preset)
}

// loadSheet returns the glyph sheet, or nil to draw flat shapes.
func loadSheet(logger *log.Logger) *assets.Sheet {
	if flagNoSprites {
		return nil
	}
	sheet, err := assets.Load(flagSprites)
	if err != nil {
		logger.Warn("glyph sheet unavailable, drawing flat shapes", "error", err)
		return nil
	}
	return sheet
}

// openTracker opens the store selected by --store. Failures to open a
// store are logged and the tracker keeps the best score in memory.
func openTracker(logger *log.Logger) (*scoring.Tracker, func(), error) {
	noop := func() {}

	switch flagStore {
	case storeSQLite:
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "error", err)
			return scoring.NewTracker(nil, logger), noop, nil
		}
		rec := store.Record(scoring.StorageKey)
		return scoring.NewTracker(rec, logger), func() { store.Close() }, nil

	case storeFile:
		fs, err := scoring.NewFileStore(flagScoresFile, scoring.StorageKey)
		if err != nil {
			logger.Warn("could not open score file", "error", err)
			return scoring.NewTracker(nil, logger), noop, nil
		}
		return scoring.NewTracker(fs, logger), noop, nil

	case storeNone:
		return scoring.NewTracker(nil, logger), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store %q (want sqlite, file or none)", flagStore)
	}
}
