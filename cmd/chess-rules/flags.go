// flags.go - Command-line flag definitions
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: standard opening)")
	batchFile = flag.String("batch", "", "Analyze FEN positions from this file, one per line ('-' for stdin)")
	workers   = flag.Int("workers", 0, "Worker count for batch analysis (default: CHESS_WORKERS or 4)")
	quiet     = flag.Bool("q", false, "Suppress the board diagram, print prompts only")
	version   = flag.Bool("version", false, "Print version and exit")
	help      = flag.Bool("h", false, "Show usage")
)

// applyFlags overrides environment configuration with explicit flags.
func applyFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *quiet {
		cfg.Verbosity = 0
	}
}
