package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCount          = errors.New("invalid count")
	ErrTooManyRequested      = errors.New("too many numbers requested")
	ErrInsufficientRemaining = errors.New("insufficient numbers remaining")
	ErrNothingToExport       = errors.New("nothing to export")
)

// InsufficientRemainingError reports how many numbers are still available
// when a draw asks for more than that.
type InsufficientRemainingError struct {
	Remaining int
	Requested int
}

func (e *InsufficientRemainingError) Error() string {
	if e.Remaining == 0 {
		return "all numbers drawn"
	}
	return fmt.Sprintf("only %d numbers remain, cannot draw %d", e.Remaining, e.Requested)
}

func (e *InsufficientRemainingError) Is(target error) bool {
	return target == ErrInsufficientRemaining
}
