package render

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPositionStringStart(t *testing.T) {
	out := testutil.MustPosition(t, engine.InitialFEN)
	text := PositionString(out)

	testutil.AssertContains(t, text, "Current turn: White")
	testutil.AssertContains(t, text, "   a b c d e f g h")
	// Black's back rank prints first, White's last.
	testutil.AssertContains(t, text, "8  r n b q k b n r")
	testutil.AssertContains(t, text, "1  R N B Q K B N R")
	testutil.AssertContains(t, text, "7  p p p p p p p p")
	testutil.AssertContains(t, text, "2  P P P P P P P P")

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	// Header, blank, file letters, spacer, then the eight ranks.
	if len(lines) != 12 {
		t.Fatalf("line count = %d, want 12:\n%s", len(lines), text)
	}
	if got := strings.TrimRight(lines[4], " "); got != "8  r n b q k b n r" {
		t.Errorf("first rank line = %q", got)
	}
	if got := strings.TrimRight(lines[11], " "); got != "1  R N B Q K B N R" {
		t.Errorf("last rank line = %q", got)
	}
}

func TestPositionStringEmptySquares(t *testing.T) {
	board := testutil.MustPosition(t, "8/8/8/8/3K4/8/8/8 w - - 0 1")
	text := PositionString(board)

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "4 ") {
			if got := strings.TrimRight(line, " "); got != "4        K" {
				t.Errorf("rank 4 line = %q, want the king alone on d4", got)
			}
			return
		}
	}
	t.Fatalf("no rank 4 line in output:\n%s", text)
}

func TestPositionReflectsSideToMove(t *testing.T) {
	board := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	testutil.AssertContains(t, PositionString(board), "Current turn: Black")
}
