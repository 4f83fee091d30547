package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ecoquest/internal/config"
	"ecoquest/internal/content"
	"ecoquest/internal/engine"
	"ecoquest/internal/registry"
	"ecoquest/internal/store"
)

// Start wires the whole application from environment configuration and
// runs the interface until it exits.
func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// The alt-screen owns stderr, so logs go to a file next to the data.
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "ecoquest.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	st, err := store.Open(cfg.DataPath(), logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	lib, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	reg := registry.New(st, logger)
	seq := engine.NewSequencer(lib, reg, seed)

	logger.Info("starting", "data", cfg.DataPath(), "seed", seed)
	return Run(seq, reg, lib, logger)
}
