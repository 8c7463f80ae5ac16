package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get('e', '1') == chess.W(chess.King) &&
					b.Get('e', '8') == chess.B(chess.King) &&
					b.Get('e', '2') == chess.W(chess.Pawn) &&
					b.Get('e', '7') == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.WKingCastle && b.WQueenCastle &&
					b.BKingCastle && b.BQueenCastle &&
					b.HalfmoveClock == 0 && b.MoveNumber == 1
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				sq, ok := b.EnPassantSquare()
				return b.Get('e', '4') == chess.W(chess.Pawn) &&
					b.Get('e', '2') == chess.Empty &&
					b.ToMove == chess.Black &&
					ok && sq == chess.Sq('e', '3')
			},
		},
		{
			name: "partial castling and clocks",
			fen:  "rnbqkbnr/pp1ppppp/2p5/8/4P3/8/PPPP1PPP/RNBQKBNR b kq e3 20 2",
			checkFn: func(b *chess.Board) bool {
				return !b.WKingCastle && !b.WQueenCastle &&
					b.BKingCastle && b.BQueenCastle &&
					b.Get('c', '6') == chess.B(chess.Pawn) &&
					b.HalfmoveClock == 20 && b.MoveNumber == 2
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return !b.WKingCastle && !b.WQueenCastle &&
					!b.BKingCastle && !b.BQueenCastle
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "five fields", fen: "8/8/8/8/8/8/8/4K3 w - 0 1", wantErr: true},
		{name: "seven fields", fen: "8/8/8/8/8/8/8/4K3 w - - 0 1 x", wantErr: true},
		{name: "seven ranks", fen: "8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "unknown piece letter", fen: "8/8/8/8/8/8/8/4X3 w - - 0 1", wantErr: true},
		{name: "rank too long", fen: "9/8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "rank too short", fen: "7/8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "bad side to move", fen: "8/8/8/8/8/8/8/4K3 x - - 0 1", wantErr: true},
		{name: "bad castling letter", fen: "8/8/8/8/8/8/8/4K3 w Z - 0 1", wantErr: true},
		{name: "bad en passant square", fen: "8/8/8/8/8/8/8/4K3 w - e9 0 1", wantErr: true},
		{name: "non-numeric halfmove clock", fen: "8/8/8/8/8/8/8/4K3 w - - x 1", wantErr: true},
		{name: "negative halfmove clock", fen: "8/8/8/8/8/8/8/4K3 w - - -1 1", wantErr: true},
		{name: "non-numeric move number", fen: "8/8/8/8/8/8/8/4K3 w - - 0 x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBoardFromFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidFEN) {
					t.Errorf("error %v is not ErrInvalidFEN", err)
				}
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed")
			}
		})
	}
}

func TestBoardToFENRoundTrip(t *testing.T) {
	// Decode then re-encode must reproduce the exact input string.
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/2p5/8/4P3/8/PPPP1PPP/RNBQKBNR b kq e3 20 2",
		"8/8/8/8/8/8/8/4K3 w - - 12 34",
		"1B6/8/8/8/8/8/8/8 w - - 0 1",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e2")
	if err != nil {
		t.Fatalf("ParseSquare(e2) error = %v", err)
	}
	if sq != chess.Sq('e', '2') {
		t.Errorf("ParseSquare(e2) = %v", sq)
	}

	for _, bad := range []string{"", "e", "e9", "i1", "22", "e22"} {
		if _, err := ParseSquare(bad); !stderrors.Is(err, errors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", bad, err)
		}
	}
}

func TestColouredPieceToSANLetter(t *testing.T) {
	if got := ColouredPieceToSANLetter(chess.W(chess.Knight)); got != 'N' {
		t.Errorf("white knight letter = %c, want N", got)
	}
	if got := ColouredPieceToSANLetter(chess.B(chess.Queen)); got != 'q' {
		t.Errorf("black queen letter = %c, want q", got)
	}
}
