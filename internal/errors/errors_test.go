package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestMoveError(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, From: "e2", To: "e5"}

	if !errors.Is(moveErr, ErrIllegalMove) {
		t.Error("MoveError must unwrap to its sentinel")
	}
	if errors.Is(moveErr, ErrInvalidFEN) {
		t.Error("MoveError must not match unrelated sentinels")
	}

	msg := moveErr.Error()
	for _, part := range []string{"e2", "e5", "illegal move"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}

	var target *MoveError
	if !errors.As(error(moveErr), &target) {
		t.Error("errors.As must recover the MoveError")
	}
	if target.From != "e2" || target.To != "e5" {
		t.Errorf("recovered squares %s %s, want e2 e5", target.From, target.To)
	}
}

func TestMoveErrorNoCause(t *testing.T) {
	moveErr := &MoveError{From: "a1", To: "a2"}
	if moveErr.Unwrap() != nil {
		t.Error("Unwrap() must be nil without a cause")
	}
	if msg := moveErr.Error(); !strings.Contains(msg, "rejected") {
		t.Errorf("Error() = %q, want a rejection message", msg)
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "rank 3")
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap must preserve the sentinel")
	}
	if !strings.Contains(wrapped.Error(), "rank 3") {
		t.Errorf("Wrap lost its context: %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) must be nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidSquare, "%q", "z9")
	if !errors.Is(wrapped, ErrInvalidSquare) {
		t.Error("Wrapf must preserve the sentinel")
	}
	if !strings.Contains(wrapped.Error(), `"z9"`) {
		t.Errorf("Wrapf lost its context: %q", wrapped.Error())
	}
	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) must be nil")
	}
}
