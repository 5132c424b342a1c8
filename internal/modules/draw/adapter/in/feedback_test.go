package in_test

import (
	"errors"
	"fmt"
	"testing"

	drawin "numdraw/internal/modules/draw/adapter/in"
	apperrors "numdraw/internal/platform/errors"
)

func TestFeedback(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		err   error
		msg   string
		reset int
	}{
		{"invalid", apperrors.ErrInvalidCount, "Please request at least 1 number.", 1},
		{"too many", apperrors.ErrTooManyRequested, "You can draw at most 5 numbers at a time.", 5},
		{"exhausted", &apperrors.InsufficientRemainingError{Remaining: 0, Requested: 2}, "All numbers (1-99) have been drawn. Press CLEAR to reset.", 0},
		{"partial", fmt.Errorf("draw: %w", &apperrors.InsufficientRemainingError{Remaining: 2, Requested: 3}), "Only 2 numbers remain; cannot draw 3 at once.", 0},
		{"empty export", apperrors.ErrNothingToExport, "There are no numbers to export yet.", 0},
	}
	for _, tc := range cases {
		notice, ok := drawin.Feedback(tc.err)
		if !ok {
			t.Fatalf("%s: expected a notice", tc.name)
		}
		if notice.Message != tc.msg || notice.ResetCount != tc.reset {
			t.Fatalf("%s: unexpected notice %+v", tc.name, notice)
		}
	}
}

func TestFeedbackIgnoresOtherErrors(t *testing.T) {
	t.Parallel()
	if _, ok := drawin.Feedback(nil); ok {
		t.Fatalf("nil error must not produce a notice")
	}
	if _, ok := drawin.Feedback(errors.New("disk full")); ok {
		t.Fatalf("infrastructure errors must not be treated as validation feedback")
	}
}
