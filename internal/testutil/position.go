package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustPosition decodes a FEN string into a board, aborting the test on
// failure. Use this in test setup where a bad fixture should not be
// reported as an engine defect.
func MustPosition(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to decode fixture FEN %q: %v", fen, err)
	}
	return board
}

// MustGame decodes a FEN string into a game, aborting the test on failure.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to decode fixture FEN %q: %v", fen, err)
	}
	return game
}

// SquareNames converts a destination set to sorted algebraic names, so
// tests can compare move sets without caring about generation order.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}
