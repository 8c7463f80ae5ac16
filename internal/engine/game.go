package engine

import (
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game owns one position and the state derived from it: the board with
// its rules fields, the promotion kind applied at the next promotion, and
// the game state stored after the last completed move or load.
type Game struct {
	board *chess.Board

	// promotion is a bare piece kind (Queen by default); it is coloured
	// to the moving side at the moment a pawn promotes, so a standing
	// preference persists across turns for whichever side promotes next.
	promotion chess.Piece

	state chess.GameState
}

// NewStandardGame creates a game at the standard starting position.
func NewStandardGame() *Game {
	game := &Game{}
	// InitialFEN always decodes.
	_ = game.LoadFEN(InitialFEN)
	return game
}

// NewGameFromFEN creates a game from an arbitrary FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	game := &Game{}
	if err := game.LoadFEN(fen); err != nil {
		return nil, err
	}
	return game, nil
}

// LoadFEN replaces the whole position from a FEN string. On failure the
// game is left exactly as it was; all fields change together or not at
// all. The promotion selection survives a reload.
func (g *Game) LoadFEN(fen string) error {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	g.board = board
	if g.promotion == chess.Empty {
		g.promotion = chess.Queen
	}
	g.state = EvaluateState(board)
	return nil
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}

// Board returns the underlying board for read access.
func (g *Game) Board() *chess.Board {
	return g.board
}

// State returns the game state stored after the last completed move or
// position load. It is not recomputed per query.
func (g *Game) State() chess.GameState {
	return g.state
}

// SelectPromotion sets the piece kind used at the next promotion. The
// letter is one of q, r, b, n, case-insensitive.
func (g *Game) SelectPromotion(letter byte) error {
	switch unicode.ToLower(rune(letter)) {
	case 'q':
		g.promotion = chess.Queen
	case 'r':
		g.promotion = chess.Rook
	case 'b':
		g.promotion = chess.Bishop
	case 'n':
		g.promotion = chess.Knight
	default:
		return errors.Wrapf(errors.ErrInvalidPromotion, "%q", letter)
	}
	return nil
}

// PromotionPiece returns the piece kind applied at the next promotion.
func (g *Game) PromotionPiece() chess.Piece {
	return g.promotion
}

// LegalMoves returns the legal destination set for the piece on the
// given algebraic square. An empty or enemy-owned origin is an illegal
// request.
func (g *Game) LegalMoves(from string) ([]chess.Square, error) {
	fromSq, err := ParseSquare(from)
	if err != nil {
		return nil, err
	}
	piece := g.board.GetSq(fromSq)
	colour, ok := chess.ColourOf(piece)
	if !ok || colour != g.board.ToMove {
		return nil, &errors.MoveError{Err: errors.ErrIllegalMove, From: from, To: "-"}
	}
	return LegalMoves(g.board, fromSq), nil
}

// ApplyMove executes one move given as algebraic origin and destination
// squares. It returns the stored game state for the side now to move, or
// an error for a rejected request. Rejection never partially mutates the
// game: every check happens before the first write.
func (g *Game) ApplyMove(from, to string) (chess.GameState, error) {
	reject := func(err error) (chess.GameState, error) {
		return g.state, &errors.MoveError{Err: err, From: from, To: to}
	}

	fromSq, err := ParseSquare(from)
	if err != nil {
		return reject(err)
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return reject(err)
	}

	board := g.board
	piece := board.GetSq(fromSq)
	colour, ok := chess.ColourOf(piece)
	if !ok || colour != board.ToMove {
		return reject(errors.ErrIllegalMove)
	}
	if !containsSquare(LegalMoves(board, fromSq), toSq) {
		return reject(errors.ErrIllegalMove)
	}

	// The move is legal; from here on every update is applied.
	kind := chess.ExtractPiece(piece)
	captured := board.GetSq(toSq) != chess.Empty
	pawnMove := kind == chess.Pawn

	switch kind {
	case chess.King:
		applyCastleRookMove(board, colour, toSq)
		clearCastlingRights(board, colour)
	case chess.Pawn:
		if epSquare, hasEP := board.EnPassantSquare(); hasEP && toSq == epSquare {
			// The captured pawn sits one rank behind the target from the
			// capturing pawn's perspective.
			behind := chess.Rank(int(toSq.Rank) - chess.ColourOffset(colour))
			board.Set(toSq.Col, behind, chess.Empty)
			captured = true
		}
	}

	updateEnPassantTarget(board, kind, colour, fromSq, toSq)
	clearRightsForSquare(board, fromSq)
	clearRightsForSquare(board, toSq)

	if pawnMove || captured {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	board.SetSq(toSq, piece)
	board.SetSq(fromSq, chess.Empty)

	if pawnMove && toSq.Rank == pawnLastRank(colour) {
		board.SetSq(toSq, chess.MakeColouredPiece(colour, g.promotion))
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	g.state = EvaluateState(board)
	return g.state, nil
}

// applyCastleRookMove relocates the paired rook when the king reaches a
// recognized castling destination with that right still granted. The
// rights themselves are cleared by the caller once the king moves.
func applyCastleRookMove(board *chess.Board, colour chess.Colour, toSq chess.Square) {
	homeRank := chess.Rank('1')
	kingside, queenside := board.WKingCastle, board.WQueenCastle
	rook := chess.W(chess.Rook)
	if colour == chess.Black {
		homeRank = '8'
		kingside, queenside = board.BKingCastle, board.BQueenCastle
		rook = chess.B(chess.Rook)
	}

	if kingside && toSq == chess.Sq('g', homeRank) {
		board.Set('h', homeRank, chess.Empty)
		board.Set('f', homeRank, rook)
	}
	if queenside && toSq == chess.Sq('c', homeRank) {
		board.Set('a', homeRank, chess.Empty)
		board.Set('d', homeRank, rook)
	}
}

// clearCastlingRights removes both rights for a colour; once the king has
// moved neither castle can ever be played.
func clearCastlingRights(board *chess.Board, colour chess.Colour) {
	if colour == chess.White {
		board.WKingCastle = false
		board.WQueenCastle = false
	} else {
		board.BKingCastle = false
		board.BQueenCastle = false
	}
}

// clearRightsForSquare drops the rights tied to a king or rook home
// square when a move starts or ends there. Covers both "rook moved" and
// "rook captured on its home square".
func clearRightsForSquare(board *chess.Board, sq chess.Square) {
	switch sq {
	case chess.Sq('a', '1'):
		board.WQueenCastle = false
	case chess.Sq('h', '1'):
		board.WKingCastle = false
	case chess.Sq('e', '1'):
		board.WKingCastle = false
		board.WQueenCastle = false
	case chess.Sq('a', '8'):
		board.BQueenCastle = false
	case chess.Sq('h', '8'):
		board.BKingCastle = false
	case chess.Sq('e', '8'):
		board.BKingCastle = false
		board.BQueenCastle = false
	}
}

// updateEnPassantTarget sets the passed-over square as the target after a
// two-rank pawn advance from its starting rank, and clears it otherwise.
func updateEnPassantTarget(board *chess.Board, kind chess.Piece, colour chess.Colour, fromSq, toSq chess.Square) {
	board.ClearEnPassant()
	if kind != chess.Pawn || fromSq.Rank != pawnStartRank(colour) {
		return
	}
	dir := chess.ColourOffset(colour)
	if int(toSq.Rank) == int(fromSq.Rank)+2*dir {
		board.SetEnPassantSquare(chess.Sq(fromSq.Col, chess.Rank(int(fromSq.Rank)+dir)))
	}
}

// containsSquare reports whether sq appears in the list.
func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
