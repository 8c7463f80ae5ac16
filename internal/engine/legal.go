package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the pseudo-legal destinations for the piece on from
// that do not leave its own king attacked.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.GetSq(from)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var legal []chess.Square
	for _, to := range PseudoLegalMoves(board, from) {
		if !leavesKingInCheck(board, from, to, colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// leavesKingInCheck replays the bare relocation on a throwaway copy of
// the board and runs the check-only detector for the mover's colour.
// Castling rook relocation and en passant capture removal are not
// replayed; only the moving piece is transferred.
func leavesKingInCheck(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Copy()
	testBoard.SetSq(to, testBoard.GetSq(from))
	testBoard.SetSq(from, chess.Empty)
	return IsInCheck(testBoard, colour)
}
