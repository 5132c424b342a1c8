package domain

import (
	"time"

	apperrors "numdraw/internal/platform/errors"
)

const (
	MinNumber  = 1
	MaxNumber  = 99
	Capacity   = MaxNumber - MinNumber + 1
	MaxPerDraw = 5

	// StaggerStep is the reveal delay added per position within a batch.
	StaggerStep = 100 * time.Millisecond
)

// Ball is one drawn number together with its position in the batch.
type Ball struct {
	Value   int
	Stagger int
}

// Batch holds the numbers of a single draw in generation order.
type Batch []Ball

func NewBatch(values []int) Batch {
	b := make(Batch, len(values))
	for i, v := range values {
		b[i] = Ball{Value: v, Stagger: i}
	}
	return b
}

func (b Batch) Values() []int {
	out := make([]int, len(b))
	for i, ball := range b {
		out[i] = ball.Value
	}
	return out
}

// Delay is the presentation offset for the ball.
func (b Ball) Delay() time.Duration {
	return time.Duration(b.Stagger) * StaggerStep
}

func InRange(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// ParseCount reads the count field: leading whitespace, an optional sign,
// then the leading run of digits. Anything after the digits is ignored.
func ParseCount(raw string) (int, error) {
	i := 0
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	neg := false
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		neg = raw[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		if n <= Capacity {
			n = n*10 + int(raw[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, apperrors.ErrInvalidCount
	}
	if neg {
		n = -n
	}
	return n, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// ValidateCount checks a request of count numbers against a session that
// already holds drawn numbers.
func ValidateCount(count, drawn int) error {
	if count < 1 {
		return apperrors.ErrInvalidCount
	}
	if count > MaxPerDraw {
		return apperrors.ErrTooManyRequested
	}
	if drawn+count > Capacity {
		return &apperrors.InsufficientRemainingError{Remaining: Capacity - drawn, Requested: count}
	}
	return nil
}
