package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// AttackCoverage returns the squares the piece on from could capture on,
// independent of whose turn it is and of check state. It differs from
// PseudoLegalMoves only for the king (adjacent squares only, no castling,
// which keeps threat computation free of recursion into castling
// legality) and for pawns (the diagonal-forward squares regardless of
// occupancy). Sliding and knight coverage is identical, including the
// stop at the first obstruction along a ray.
func AttackCoverage(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.GetSq(from)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Rook:
		return slidingMoves(board, from, colour, straightDirs)
	case chess.Bishop:
		return slidingMoves(board, from, colour, diagonalDirs)
	case chess.Queen:
		covered := slidingMoves(board, from, colour, straightDirs)
		return append(covered, slidingMoves(board, from, colour, diagonalDirs)...)
	case chess.Knight:
		return offsetMoves(board, from, colour, knightOffsets)
	case chess.King:
		return adjacentSquares(from)
	case chess.Pawn:
		return pawnAttacks(from, colour)
	}
	return nil
}

// adjacentSquares returns the in-bounds squares around sq regardless of
// occupancy. A king covers a square even when a friendly piece stands on
// it, so the enemy king cannot capture a defended piece.
func adjacentSquares(sq chess.Square) []chess.Square {
	var covered []chess.Square
	for _, off := range kingOffsets {
		if to, ok := offsetSquare(sq, off[0], off[1]); ok {
			covered = append(covered, to)
		}
	}
	return covered
}

// pawnAttacks returns the diagonal-forward squares regardless of
// occupancy. A pawn threatens a square it could capture on even while
// that square is empty.
func pawnAttacks(sq chess.Square, colour chess.Colour) []chess.Square {
	var covered []chess.Square
	dir := chess.ColourOffset(colour)
	for _, dCol := range []int{-1, 1} {
		if to, ok := offsetSquare(sq, dCol, dir); ok {
			covered = append(covered, to)
		}
	}
	return covered
}

// attackedSquares returns the union of AttackCoverage over every piece of
// the given colour.
func attackedSquares(board *chess.Board, by chess.Colour) map[chess.Square]bool {
	attacked := make(map[chess.Square]bool)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != by {
				continue
			}
			for _, sq := range AttackCoverage(board, chess.Sq(col, rank)) {
				attacked[sq] = true
			}
		}
	}
	return attacked
}
