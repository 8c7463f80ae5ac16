// Package render writes a position as a plain text diagram for the CLI.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Position writes the side to move and the board grid, file letters on
// top and White's back rank at the bottom.
func Position(w io.Writer, board *chess.Board) {
	fmt.Fprintf(w, "Current turn: %s\n\n", board.ToMove)
	fmt.Fprintln(w, "   a b c d e f g h")
	fmt.Fprintln(w, " ")
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		fmt.Fprintf(w, "%c  ", rank)
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				fmt.Fprint(w, "  ")
			} else {
				fmt.Fprintf(w, "%c ", engine.ColouredPieceToSANLetter(piece))
			}
		}
		fmt.Fprintln(w)
	}
}

// PositionString returns Position output as a string.
func PositionString(board *chess.Board) string {
	var sb strings.Builder
	Position(&sb, board)
	return sb.String()
}
