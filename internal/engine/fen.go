// Package engine implements the chess rules: move generation, threat
// coverage, legality filtering, state detection, move execution, and the
// FEN codec.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFieldCount is the number of space-separated fields in a full FEN
// record: placement, side to move, castling, en passant, halfmove clock,
// fullmove number.
const fenFieldCount = 6

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece kind.
// Unrecognized characters map to Empty.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece kind.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToSANLetter returns the SAN letter for a coloured piece,
// lowercased for Black.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	piece := chess.ExtractPiece(colouredPiece)
	letter := SANPieceLetter(piece)
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseSquare converts algebraic square text such as "e2" into a Square.
func ParseSquare(text string) (chess.Square, error) {
	if len(text) != 2 {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", text)
	}
	col := chess.Col(text[0])
	rank := chess.Rank(text[1])
	if !chess.OnBoard(col, rank) {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", text)
	}
	return chess.Sq(col, rank), nil
}

// NewBoardFromFEN creates a board from a FEN string. The whole record is
// validated before any board is returned, so a failed decode never yields
// a partially populated position.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFieldCount {
		return nil, fmt.Errorf("FEN has %d fields, want %d: %w", len(parts), fenFieldCount, errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("placement has %d ranks, want %d: %w", len(ranks), chess.BoardSize, errors.ErrInvalidFEN)
	}

	// The first rank in the placement field is rank 8.
	rank := chess.Rank(chess.LastRank)
	for _, rankText := range ranks {
		col := chess.Col(chess.FirstCol)
		for i := 0; i < len(rankText); i++ {
			c := rankText[i]
			if c >= '1' && c <= '8' {
				col += chess.Col(c - '0')
				continue
			}
			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if col > chess.LastCol {
				return fmt.Errorf("rank %c overflows the board: %w", rank, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
			col++
		}
		if col != chess.LastCol+1 {
			return fmt.Errorf("rank %c covers %d files, want %d: %w", rank, int(col-chess.FirstCol), chess.BoardSize, errors.ErrInvalidFEN)
		}
		rank--
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. The rights
// are stored as given; they are never checked against piece placement.
func parseCastlingRights(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	if field == "" {
		return fmt.Errorf("empty castling field: %w", errors.ErrInvalidFEN)
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			board.WKingCastle = true
		case 'Q':
			board.WQueenCastle = true
		case 'k':
			board.BKingCastle = true
		case 'q':
			board.BQueenCastle = true
		default:
			return fmt.Errorf("invalid castling character %q: %w", field[i], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := ParseSquare(field)
	if err != nil {
		return fmt.Errorf("invalid en passant square %q: %w", field, errors.ErrInvalidFEN)
	}
	board.SetEnPassantSquare(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid halfmove clock %q: %w", halfmove, errors.ErrInvalidFEN)
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid fullmove number %q: %w", fullmove, errors.ErrInvalidFEN)
	}
	board.HalfmoveClock = uint(hm)
	board.MoveNumber = uint(fm)
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability in fixed KQkq order.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WKingCastle {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WQueenCastle {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BKingCastle {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BQueenCastle {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if sq, ok := board.EnPassantSquare(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
