// batch.go - parallel analysis of FEN positions from a file
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runBatch reads one FEN per line from path ('-' for stdin), evaluates
// each position on the worker pool, and prints state and legal-move
// count per line in input order.
func runBatch(cfg *config.Config, path string, out io.Writer) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	pool := worker.NewPool(analyzePosition,
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(2*cfg.Workers))
	pool.Start()

	var results []worker.ProcessResult
	done := make(chan struct{})
	go func() {
		for result := range pool.Results() {
			results = append(results, result)
		}
		close(done)
	}()

	scanner := bufio.NewScanner(in)
	index := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pool.Submit(worker.WorkItem{FEN: line, Index: index})
		index++
	}
	pool.Close()
	<-done
	if err := scanner.Err(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(out, "%d: error: %v\n", result.Index+1, result.Err)
			continue
		}
		fmt.Fprintf(out, "%d: %s, %d legal moves\n", result.Index+1, result.State, result.LegalMoves)
	}
	return nil
}

// analyzePosition decodes one FEN into its own game and reports the
// stored state plus the legal-move total for the side to move.
func analyzePosition(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, FEN: item.FEN}

	game, err := engine.NewGameFromFEN(item.FEN)
	if err != nil {
		result.Err = err
		return result
	}
	result.State = game.State()
	result.LegalMoves = countLegalMoves(game.Board())
	return result
}

// countLegalMoves totals the legal destinations of every piece belonging
// to the side to move.
func countLegalMoves(board *chess.Board) int {
	total := 0
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != board.ToMove {
				continue
			}
			total += len(engine.LegalMoves(board, chess.Sq(col, rank)))
		}
	}
	return total
}
