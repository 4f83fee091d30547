package main

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
	"ecoquest/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Printf("Error creating data dir: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "ecoquest.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	st, err := store.Open(cfg.DataPath(), logger)
	if err != nil {
		fmt.Printf("Error opening store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	lib, err := content.Load()
	if err != nil {
		fmt.Printf("Error loading content: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	reg := registry.New(st, logger)
	seq := engine.NewSequencer(lib, reg, seed)

	if err := tui.Run(seq, reg, lib, logger); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
