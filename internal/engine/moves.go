package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables shared by move generation and threat
// coverage.
var (
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// offsetSquare returns the square displaced from sq by the given file and
// rank deltas, and whether it lies on the board.
func offsetSquare(sq chess.Square, dCol, dRank int) (chess.Square, bool) {
	col := chess.Col(int(sq.Col) + dCol)
	rank := chess.Rank(int(sq.Rank) + dRank)
	if !chess.OnBoard(col, rank) {
		return chess.Square{}, false
	}
	return chess.Sq(col, rank), true
}

// PseudoLegalMoves returns the destinations consistent with the movement
// pattern of the piece on from and the current occupancy, before
// self-check filtering. It is a pure function of the board; nothing is
// mutated.
func PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Square {
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
		moves := slidingMoves(board, from, colour, straightDirs)
		return append(moves, slidingMoves(board, from, colour, diagonalDirs)...)
	case chess.Knight:
		return offsetMoves(board, from, colour, knightOffsets)
	case chess.King:
		return kingMoves(board, from, colour)
	case chess.Pawn:
		return pawnMoves(board, from, colour)
	}
	return nil
}

// slidingMoves walks each direction one step at a time, collecting empty
// squares and stopping at the first occupied one, which is included only
// when enemy-owned.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to, ok := offsetSquare(from, dir[0], dir[1])
		for ok {
			target := board.GetSq(to)
			if target == chess.Empty {
				moves = append(moves, to)
				to, ok = offsetSquare(to, dir[0], dir[1])
				continue
			}
			if chess.ExtractColour(target) != colour {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// offsetMoves collects the in-bounds offset destinations that are empty
// or enemy-owned.
func offsetMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, off := range offsets {
		to, ok := offsetSquare(from, off[0], off[1])
		if !ok {
			continue
		}
		target := board.GetSq(to)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// kingMoves returns the adjacent destinations plus any available castling
// destinations. A castling destination requires the right to be granted,
// the squares strictly between king and rook to be empty, and the king's
// origin, transit, and destination squares to be free of enemy attacks.
func kingMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	moves := offsetMoves(board, from, colour, kingOffsets)

	var kingside, queenside bool
	homeRank := chess.Rank('1')
	if colour == chess.White {
		kingside, queenside = board.WKingCastle, board.WQueenCastle
	} else {
		kingside, queenside = board.BKingCastle, board.BQueenCastle
		homeRank = '8'
	}
	if !kingside && !queenside {
		return moves
	}
	// Castling is only generated from the king's home square; the rights
	// themselves are trusted as loaded.
	if from != chess.Sq('e', homeRank) {
		return moves
	}

	attacked := attackedSquares(board, colour.Opposite())
	clear := func(cols ...chess.Col) bool {
		for _, col := range cols {
			if board.Get(col, homeRank) != chess.Empty {
				return false
			}
		}
		return true
	}
	safe := func(cols ...chess.Col) bool {
		for _, col := range cols {
			if attacked[chess.Sq(col, homeRank)] {
				return false
			}
		}
		return true
	}

	if kingside && clear('f', 'g') && safe('e', 'f', 'g') {
		moves = append(moves, chess.Sq('g', homeRank))
	}
	if queenside && clear('b', 'c', 'd') && safe('e', 'd', 'c') {
		moves = append(moves, chess.Sq('c', homeRank))
	}
	return moves
}

// pawnStartRank returns the rank pawns of the given colour start from.
func pawnStartRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '2'
	}
	return '7'
}

// pawnLastRank returns the farthest rank for pawns of the given colour.
func pawnLastRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '8'
	}
	return '1'
}

// pawnMoves returns forward pushes, diagonal captures, and en passant
// captures. Pawns never move backward or sideways.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := chess.ColourOffset(colour)

	if one, ok := offsetSquare(from, 0, dir); ok && board.GetSq(one) == chess.Empty {
		moves = append(moves, one)
		if from.Rank == pawnStartRank(colour) {
			if two, ok := offsetSquare(from, 0, 2*dir); ok && board.GetSq(two) == chess.Empty {
				moves = append(moves, two)
			}
		}
	}

	epSquare, hasEP := board.EnPassantSquare()
	for _, dCol := range []int{-1, 1} {
		to, ok := offsetSquare(from, dCol, dir)
		if !ok {
			continue
		}
		target := board.GetSq(to)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = append(moves, to)
		} else if hasEP && to == epSquare {
			moves = append(moves, to)
		}
	}
	return moves
}
