package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustBoard decodes a fixture FEN or aborts the test.
func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("bad fixture FEN %q: %v", fen, err)
	}
	return board
}

// names sorts a destination set into algebraic form for comparison.
func names(squares []chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	sort.Strings(out)
	return out
}

func assertDestinations(t *testing.T, got []chess.Square, want []string) {
	t.Helper()
	sort.Strings(want)
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("destination set mismatch (-want +got):\n%s", diff)
	}
}

func TestLegalMovesScenarios(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "lone bishop on b8",
			fen:  "1B6/8/8/8/8/8/8/8 w - - 0 1",
			from: "b8",
			want: []string{"a7", "c7", "d6", "e5", "f4", "g3", "h2"},
		},
		{
			name: "bishop capture stops the ray",
			fen:  "1B6/b7/3B4/8/8/8/8/8 w - - 0 1",
			from: "b8",
			want: []string{"a7", "c7"},
		},
		{
			name: "rook blocked by friends",
			fen:  "8/8/2R5/2R1R3/8/8/8/8 w - - 0 1",
			from: "c5",
			want: []string{"a5", "b5", "c1", "c2", "c3", "c4", "d5"},
		},
		{
			name: "rook takes enemy and stops",
			fen:  "8/8/2r5/2R1R3/8/8/8/8 w - - 0 1",
			from: "c5",
			want: []string{"a5", "b5", "c1", "c2", "c3", "c4", "c6", "d5"},
		},
		{
			name: "knight near the edge",
			fen:  "8/1N6/8/8/8/8/8/8 w - - 0 1",
			from: "b7",
			want: []string{"a5", "c5", "d6", "d8"},
		},
		{
			name: "knight avoids friendly square",
			fen:  "3r4/1N6/3R4/8/8/8/8/8 w - - 0 1",
			from: "b7",
			want: []string{"a5", "c5", "d8"},
		},
		{
			name: "pawn single and double push",
			fen:  "8/8/8/8/8/8/2P5/8 w - - 0 1",
			from: "c2",
			want: []string{"c3", "c4"},
		},
		{
			name: "pawn double push blocked on transit",
			fen:  "8/8/8/8/8/2p5/2P5/8 w - - 0 1",
			from: "c2",
			want: []string{},
		},
		{
			name: "pawn captures and en passant",
			fen:  "8/8/3p4/1pP5/8/8/8/8 w - b6 0 1",
			from: "c5",
			want: []string{"b6", "c6", "d6"},
		},
		{
			name: "black pawn moves down the board",
			fen:  "8/2p5/8/8/8/8/8/8 b - - 0 1",
			from: "c7",
			want: []string{"c5", "c6"},
		},
		{
			name: "king with kingside castle only",
			fen:  "8/8/8/8/8/8/8/3QK2R w KQ - 0 1",
			from: "e1",
			want: []string{"d2", "e2", "f1", "f2", "g1"},
		},
		{
			name: "both castles available",
			fen:  "8/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1",
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"},
		},
		{
			name: "castle blocked by attacked transit square",
			fen:  "5r2/8/8/8/8/8/8/4K2R w K - 0 1",
			from: "e1",
			want: []string{"d1", "d2", "e2"},
		},
		{
			name: "no castle while in check",
			fen:  "4r3/8/8/8/8/8/8/4K2R w K - 0 1",
			from: "e1",
			want: []string{"d1", "d2", "f1", "f2"},
		},
		{
			name: "castle without the right",
			fen:  "8/8/8/8/8/8/8/4K2R w - - 0 1",
			from: "e1",
			want: []string{"d1", "d2", "e2", "f1", "f2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			from, err := ParseSquare(tt.from)
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", tt.from, err)
			}
			assertDestinations(t, LegalMoves(board, from), tt.want)
		})
	}
}

func TestPseudoLegalMovesEmptySquare(t *testing.T) {
	board := mustBoard(t, "8/8/8/8/8/8/8/4K3 w - - 0 1")
	if moves := PseudoLegalMoves(board, chess.Sq('a', '1')); len(moves) != 0 {
		t.Errorf("empty square produced %d moves", len(moves))
	}
}

func TestSlidingStopsAtFirstObstruction(t *testing.T) {
	// Friendly pawn on e4, enemy pawn on e6: rook on e1 may reach e2, e3
	// but not e4 or anything beyond; on the a-file nothing blocks.
	board := mustBoard(t, "8/8/4p3/8/4P3/8/8/4R3 w - - 0 1")
	moves := LegalMoves(board, chess.Sq('e', '1'))
	got := names(moves)

	for _, banned := range []string{"e4", "e5", "e6", "e7", "e8"} {
		for _, name := range got {
			if name == banned {
				t.Errorf("rook reached %s past an obstruction", banned)
			}
		}
	}
	assertDestinations(t, moves, []string{"a1", "b1", "c1", "d1", "e2", "e3", "f1", "g1", "h1"})
}
