package domain_test

import (
	"errors"
	"testing"
	"time"

	"numdraw/internal/modules/draw/domain"
	apperrors "numdraw/internal/platform/errors"
)

func TestParseCount(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"  4", 4},
		{"+2", 2},
		{"-1", -1},
		{"0", 0},
		{"3abc", 3},
		{"2.7", 2},
	}
	for _, tc := range cases {
		got, err := domain.ParseCount(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %d, got %d", tc.raw, tc.want, got)
		}
	}
	huge, err := domain.ParseCount("99999999999999999999")
	if err != nil || huge <= domain.MaxPerDraw {
		t.Fatalf("huge input must parse above the per-draw limit, got %d (%v)", huge, err)
	}
	for _, raw := range []string{"", "   ", "abc", "-", "+x"} {
		if _, err := domain.ParseCount(raw); !errors.Is(err, apperrors.ErrInvalidCount) {
			t.Fatalf("parse %q: expected invalid count, got %v", raw, err)
		}
	}
}

func TestValidateCount(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1} {
		if err := domain.ValidateCount(n, 0); !errors.Is(err, apperrors.ErrInvalidCount) {
			t.Fatalf("count %d: expected invalid count, got %v", n, err)
		}
	}
	if err := domain.ValidateCount(6, 0); !errors.Is(err, apperrors.ErrTooManyRequested) {
		t.Fatalf("expected too many requested, got %v", err)
	}
	// the per-draw limit is checked before capacity
	if err := domain.ValidateCount(6, 99); !errors.Is(err, apperrors.ErrTooManyRequested) {
		t.Fatalf("expected too many requested on full session, got %v", err)
	}

	err := domain.ValidateCount(3, 97)
	var ire *apperrors.InsufficientRemainingError
	if !errors.As(err, &ire) || ire.Remaining != 2 {
		t.Fatalf("expected 2 remaining, got %+v (%v)", ire, err)
	}
	err = domain.ValidateCount(1, 99)
	ire = nil
	if !errors.As(err, &ire) || ire.Remaining != 0 {
		t.Fatalf("expected exhausted session, got %+v (%v)", ire, err)
	}
	if err := domain.ValidateCount(2, 97); err != nil {
		t.Fatalf("exact fit should pass: %v", err)
	}
}

func TestNewBatchAssignsStagger(t *testing.T) {
	t.Parallel()
	b := domain.NewBatch([]int{42, 7, 13})
	for i, ball := range b {
		if ball.Stagger != i {
			t.Fatalf("ball %d: expected stagger %d, got %d", i, i, ball.Stagger)
		}
	}
	if got := b[2].Delay(); got != 200*time.Millisecond {
		t.Fatalf("expected 200ms delay, got %s", got)
	}
	vals := b.Values()
	if len(vals) != 3 || vals[0] != 42 || vals[1] != 7 || vals[2] != 13 {
		t.Fatalf("values must keep generation order, got %v", vals)
	}
}

func TestInRange(t *testing.T) {
	t.Parallel()
	if domain.InRange(0) || domain.InRange(100) {
		t.Fatalf("bounds must be exclusive outside 1..99")
	}
	if !domain.InRange(1) || !domain.InRange(99) {
		t.Fatalf("1 and 99 must be in range")
	}
	if domain.Capacity != 99 {
		t.Fatalf("capacity must be 99, got %d", domain.Capacity)
	}
}
