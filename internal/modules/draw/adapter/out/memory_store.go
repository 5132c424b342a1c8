package out

import (
	"context"

	drawout "numdraw/internal/modules/draw/port/out"
)

type MemoryStore struct {
	drawn map[int]struct{}
}

func NewMemoryStore() drawout.DrawnStore {
	return &MemoryStore{drawn: map[int]struct{}{}}
}

func (s *MemoryStore) Has(_ context.Context, n int) (bool, error) {
	_, ok := s.drawn[n]
	return ok, nil
}

func (s *MemoryStore) Add(_ context.Context, values ...int) error {
	for _, n := range values {
		s.drawn[n] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) Len(context.Context) (int, error) {
	return len(s.drawn), nil
}

func (s *MemoryStore) Values(context.Context) ([]int, error) {
	out := make([]int, 0, len(s.drawn))
	for n := range s.drawn {
		out = append(out, n)
	}
	return out, nil
}

func (s *MemoryStore) Clear(context.Context) error {
	clear(s.drawn)
	return nil
}
