// Package chess provides the core position types: colours, pieces,
// coordinates, and the board container.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a piece kind, or a coloured piece as stored on the
// board. A coloured piece is encoded as kind<<PieceShift|colour so that a
// single board cell carries both. Empty is its own value with no colour.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece. Only
// meaningful for non-Empty cells; prefer ColourOf when the cell may be
// empty.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece kind from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// ColourOf returns the owning colour of a board cell. The second return
// is false for Empty, which has no colour.
func ColourOf(colouredPiece Piece) (Colour, bool) {
	if colouredPiece == Empty {
		return White, false
	}
	return ExtractColour(colouredPiece), true
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// OnBoard reports whether the coordinates name a real board square.
func OnBoard(col Col, rank Rank) bool {
	return col >= FirstCol && col <= LastCol && rank >= FirstRank && rank <= LastRank
}

// ColourOffset returns the pawn advance direction: +1 for White, -1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Square identifies one board square by file and rank.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq is a shorthand constructor for a Square.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// String returns the algebraic form of the square, e.g. "e2".
func (s Square) String() string {
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// GameState is the result of evaluating a position for the side to move.
// A side with no legal moves that is not in check stays InProgress; the
// state machine has no stalemate value.
type GameState int

const (
	InProgress GameState = iota
	Check
	Checkmate
)

// String returns the string representation of a game state.
func (gs GameState) String() string {
	switch gs {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	default:
		return "InProgress"
	}
}
