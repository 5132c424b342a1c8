package service

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"numdraw/internal/modules/draw/domain"
	drawout "numdraw/internal/modules/draw/port/out"
	"numdraw/internal/platform/clock"
	apperrors "numdraw/internal/platform/errors"
)

const DefaultMaxResample = 10000

// DrawService owns the drawn set of one session. It is not safe for
// concurrent use; callers serialise actions.
type DrawService struct {
	clock       clock.Clock
	rng         drawout.RandomSource
	store       drawout.DrawnStore
	maxResample int
}

func NewDrawService(clock clock.Clock, rng drawout.RandomSource, store drawout.DrawnStore, maxResample int) *DrawService {
	if maxResample < 1 {
		maxResample = DefaultMaxResample
	}
	return &DrawService{clock: clock, rng: rng, store: store, maxResample: maxResample}
}

// Draw picks count numbers not yet drawn in this session and records them.
// A rejected request leaves the session untouched.
func (s *DrawService) Draw(ctx context.Context, count int) (domain.Batch, error) {
	drawn, err := s.store.Len(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateCount(count, drawn); err != nil {
		return nil, err
	}

	// the batch is only recorded once every slot is filled
	values := make([]int, 0, count)
	pending := make(map[int]struct{}, count)
	for len(values) < count {
		n, err := s.next(ctx, pending)
		if err != nil {
			return nil, err
		}
		pending[n] = struct{}{}
		values = append(values, n)
	}
	if err := s.store.Add(ctx, values...); err != nil {
		return nil, err
	}
	return domain.NewBatch(values), nil
}

// next rejection-samples one number that is neither stored nor pending.
// After maxResample misses it chooses uniformly among the unused numbers.
func (s *DrawService) next(ctx context.Context, pending map[int]struct{}) (int, error) {
	for attempt := 0; attempt < s.maxResample; attempt++ {
		n := s.rng.IntRange(domain.MinNumber, domain.MaxNumber)
		if !domain.InRange(n) {
			return 0, fmt.Errorf("random source returned %d outside [%d, %d]", n, domain.MinNumber, domain.MaxNumber)
		}
		if _, ok := pending[n]; ok {
			continue
		}
		taken, err := s.store.Has(ctx, n)
		if err != nil {
			return 0, err
		}
		if !taken {
			return n, nil
		}
	}

	unused, err := s.unused(ctx, pending)
	if err != nil {
		return 0, err
	}
	if len(unused) == 0 {
		return 0, &apperrors.InsufficientRemainingError{Remaining: 0, Requested: 1}
	}
	idx := s.rng.IntRange(0, len(unused)-1)
	idx = min(max(idx, 0), len(unused)-1)
	return unused[idx], nil
}

func (s *DrawService) unused(ctx context.Context, pending map[int]struct{}) ([]int, error) {
	drawn, err := s.store.Values(ctx)
	if err != nil {
		return nil, err
	}
	taken := maps.Clone(pending)
	for _, n := range drawn {
		taken[n] = struct{}{}
	}
	out := make([]int, 0, domain.Capacity-len(taken))
	for n := domain.MinNumber; n <= domain.MaxNumber; n++ {
		if _, ok := taken[n]; !ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *DrawService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *DrawService) Export(ctx context.Context) (domain.ExportedFile, error) {
	values, err := s.store.Values(ctx)
	if err != nil {
		return domain.ExportedFile{}, err
	}
	if len(values) == 0 {
		return domain.ExportedFile{}, apperrors.ErrNothingToExport
	}
	return domain.NewExportedFile(values, s.clock.Now()), nil
}

// Snapshot returns the drawn numbers in ascending order and how many remain.
func (s *DrawService) Snapshot(ctx context.Context) ([]int, int, error) {
	values, err := s.store.Values(ctx)
	if err != nil {
		return nil, 0, err
	}
	slices.Sort(values)
	return values, domain.Capacity - len(values), nil
}
