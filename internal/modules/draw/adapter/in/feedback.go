package in

import (
	"errors"
	"fmt"

	drawdto "numdraw/internal/modules/draw/dto"
	apperrors "numdraw/internal/platform/errors"
)

// Placeholder is shown by an empty result area.
const Placeholder = "Ready to draw"

// Feedback turns a rejected action into the notice shown to the user. It
// reports false for errors that are not user-correctable.
func Feedback(err error) (drawdto.Notice, bool) {
	switch {
	case err == nil:
		return drawdto.Notice{}, false
	case errors.Is(err, apperrors.ErrInvalidCount):
		return drawdto.Notice{Message: "Please request at least 1 number.", ResetCount: 1}, true
	case errors.Is(err, apperrors.ErrTooManyRequested):
		return drawdto.Notice{Message: "You can draw at most 5 numbers at a time.", ResetCount: 5}, true
	case errors.Is(err, apperrors.ErrInsufficientRemaining):
		var ire *apperrors.InsufficientRemainingError
		if !errors.As(err, &ire) || ire.Remaining == 0 {
			return drawdto.Notice{Message: "All numbers (1-99) have been drawn. Press CLEAR to reset."}, true
		}
		return drawdto.Notice{Message: fmt.Sprintf("Only %d numbers remain; cannot draw %d at once.", ire.Remaining, ire.Requested)}, true
	case errors.Is(err, apperrors.ErrNothingToExport):
		return drawdto.Notice{Message: "There are no numbers to export yet."}, true
	}
	return drawdto.Notice{}, false
}
