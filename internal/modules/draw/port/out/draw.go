package out

import (
	"context"

	"numdraw/internal/modules/draw/domain"
)

// DrawnStore holds the numbers drawn in the current session. Add records
// all values or none of them.
type DrawnStore interface {
	Has(ctx context.Context, n int) (bool, error)
	Add(ctx context.Context, values ...int) error
	Len(ctx context.Context) (int, error)
	Values(ctx context.Context) ([]int, error)
	Clear(ctx context.Context) error
}

// RandomSource returns a uniform integer in [min, max].
type RandomSource interface {
	IntRange(min, max int) int
}

// Sink is the write-only presentation surface for drawn numbers.
type Sink interface {
	Append(value, stagger int)
	Reset()
}

// Delivery hands an exported file to the user and reports where it went.
type Delivery interface {
	Deliver(ctx context.Context, file domain.ExportedFile) (string, error)
}
