// repl.go - the interactive read loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// runLoop renders the position and reads commands until "exit", EOF, or
// checkmate. Rejected moves re-prompt without changing the game.
func runLoop(cfg *config.Config, game *engine.Game, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		if cfg.Verbosity > 0 {
			render.Position(out, game.Board())
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, game.State())
		if game.State() == chess.Checkmate {
			fmt.Fprintln(out, "Game over!")
			return
		}

		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		if err := handleCommand(game, line, out); err != nil {
			fmt.Fprintf(out, "rejected: %v\n", err)
		}
	}
}

// handleCommand dispatches one input line.
func handleCommand(game *engine.Game, line string, out io.Writer) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "fen":
		fmt.Fprintln(out, game.FEN())
		return nil
	case "promote":
		if len(fields) != 2 || len(fields[1]) != 1 {
			return fmt.Errorf("usage: promote <q|r|b|n>")
		}
		return game.SelectPromotion(fields[1][0])
	case "load":
		if len(fields) < 2 {
			return fmt.Errorf("usage: load <fen>")
		}
		return game.LoadFEN(strings.TrimSpace(strings.TrimPrefix(line, "load")))
	default:
		if len(fields) != 2 {
			return fmt.Errorf("want \"<from> <to>\", e.g. \"e2 e4\"")
		}
		_, err := game.ApplyMove(fields[0], fields[1])
		return err
	}
}
