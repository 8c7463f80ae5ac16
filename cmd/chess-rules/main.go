// chess-rules is an interactive chess position engine: it validates and
// executes moves, tracks castling/en passant/clock state, and reports
// check and checkmate. It also analyzes batches of FEN positions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-rules: config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if *batchFile != "" {
		if err := runBatch(cfg, *batchFile, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
			os.Exit(1)
		}
		return
	}

	game, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chess-rules: %v\n", err)
		os.Exit(1)
	}
	runLoop(cfg, game, os.Stdin, os.Stdout)
}

// newGame builds the starting game from the configured position.
func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.StartFEN == "" {
		return engine.NewStandardGame(), nil
	}
	return engine.NewGameFromFEN(cfg.StartFEN)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Interactive mode reads commands from stdin:\n")
	fmt.Fprintf(os.Stderr, "  <from> <to>     play a move, e.g. \"e2 e4\"\n")
	fmt.Fprintf(os.Stderr, "  promote <q|r|b|n>  choose the next promotion piece\n")
	fmt.Fprintf(os.Stderr, "  fen             print the current position as FEN\n")
	fmt.Fprintf(os.Stderr, "  load <fen>      replace the position\n")
	fmt.Fprintf(os.Stderr, "  exit            quit\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
