package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck reports whether the given colour's king stands on a square
// covered by the opposing side. This is the check-only pass: no legal
// move enumeration happens here, so it is safe to call from the legality
// filter without recursion.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := findKing(board, colour)
	if !ok {
		return false
	}
	return attackedSquares(board, colour.Opposite())[kingSq]
}

// findKing locates the king of the given colour. The engine assumes
// exactly one king per colour; the first match wins.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank), true
			}
		}
	}
	return chess.Square{}, false
}

// HasLegalMoves reports whether the given colour has at least one legal
// move anywhere on the board.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != colour {
				continue
			}
			if len(LegalMoves(board, chess.Sq(col, rank))) > 0 {
				return true
			}
		}
	}
	return false
}

// EvaluateState runs the end-of-turn pass for the side to move: Check
// escalates to Checkmate when no legal reply exists. A side out of check
// with no legal moves stays InProgress; stalemate is not a terminal
// state here.
func EvaluateState(board *chess.Board) chess.GameState {
	if !IsInCheck(board, board.ToMove) {
		return chess.InProgress
	}
	if HasLegalMoves(board, board.ToMove) {
		return chess.Check
	}
	return chess.Checkmate
}
