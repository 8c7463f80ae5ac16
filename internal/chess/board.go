package chess

// Board represents a chess position with all ancillary rules state.
type Board struct {
	// The board squares, indexed [file][rank] with a1 at [0][0].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Castling rights for the four castling options. These are trusted
	// as loaded from FEN and never re-derived from piece placement.
	WKingCastle  bool
	WQueenCastle bool
	BKingCastle  bool
	BQueenCastle bool

	// Is en passant capture possible? If so then EPCol and EPRank hold
	// the square on which it can be made.
	EnPassant bool
	EPCol     Col
	EPRank    Rank

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// Get returns the piece at the given coordinates ('a'-'h', '1'-'8').
// Off-board coordinates read as Empty.
func (b *Board) Get(col Col, rank Rank) Piece {
	if !OnBoard(col, rank) {
		return Empty
	}
	return b.Squares[col-ColBase][rank-RankBase]
}

// GetSq returns the piece on the given square.
func (b *Board) GetSq(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Set places a piece at the given coordinates. Off-board coordinates are
// ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	if OnBoard(col, rank) {
		b.Squares[col-ColBase][rank-RankBase] = piece
	}
}

// SetSq places a piece on the given square.
func (b *Board) SetSq(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// EnPassantSquare returns the current en passant target square, if any.
func (b *Board) EnPassantSquare() (Square, bool) {
	if !b.EnPassant {
		return Square{}, false
	}
	return Sq(b.EPCol, b.EPRank), true
}

// SetEnPassantSquare records sq as the en passant target.
func (b *Board) SetEnPassantSquare(sq Square) {
	b.EnPassant = true
	b.EPCol = sq.Col
	b.EPRank = sq.Rank
}

// ClearEnPassant removes any en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPCol = 0
	b.EPRank = 0
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
