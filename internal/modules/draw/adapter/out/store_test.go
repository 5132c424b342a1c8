package out_test

import (
	"context"
	"slices"
	"testing"

	drawout "numdraw/internal/modules/draw/adapter/out"
	drawport "numdraw/internal/modules/draw/port/out"
)

func newStores(t *testing.T) map[string]drawport.DrawnStore {
	t.Helper()
	sqliteStore, err := drawout.NewSQLiteStore(context.Background())
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = sqliteStore.Close() })
	return map[string]drawport.DrawnStore{
		"memory": drawout.NewMemoryStore(),
		"sqlite": sqliteStore,
	}
}

func TestDrawnStoreContract(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	for name, store := range newStores(t) {
		if n, err := store.Len(ctx); err != nil || n != 0 {
			t.Fatalf("%s: expected empty store, got %d (%v)", name, n, err)
		}
		for _, v := range []int{5, 1, 3, 1} {
			if err := store.Add(ctx, v); err != nil {
				t.Fatalf("%s: add %d: %v", name, v, err)
			}
		}
		if n, _ := store.Len(ctx); n != 3 {
			t.Fatalf("%s: duplicate add must not grow the set, got %d", name, n)
		}
		has, err := store.Has(ctx, 3)
		if err != nil || !has {
			t.Fatalf("%s: expected 3 present (%v)", name, err)
		}
		has, err = store.Has(ctx, 4)
		if err != nil || has {
			t.Fatalf("%s: expected 4 absent (%v)", name, err)
		}
		values, err := store.Values(ctx)
		if err != nil {
			t.Fatalf("%s: values: %v", name, err)
		}
		slices.Sort(values)
		if !slices.Equal(values, []int{1, 3, 5}) {
			t.Fatalf("%s: unexpected values %v", name, values)
		}
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("%s: clear: %v", name, err)
		}
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("%s: second clear: %v", name, err)
		}
		if n, _ := store.Len(ctx); n != 0 {
			t.Fatalf("%s: expected empty after clear, got %d", name, n)
		}
	}
}

func TestMemoryStoreValuesIsACopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := drawout.NewMemoryStore()
	_ = store.Add(ctx, 9)
	values, _ := store.Values(ctx)
	values[0] = 42
	if has, _ := store.Has(ctx, 42); has {
		t.Fatalf("mutating the returned slice must not change the store")
	}
}

func TestSQLiteStoreRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	store, err := drawout.NewSQLiteStore(context.Background())
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	defer store.Close()
	if err := store.Add(context.Background(), 100); err == nil {
		t.Fatalf("numbers above 99 must be rejected by the schema")
	}
}

func TestSQLiteStoreAddIsAllOrNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := drawout.NewSQLiteStore(ctx)
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	defer store.Close()
	if err := store.Add(ctx, 7, 8, 100); err == nil {
		t.Fatalf("expected the out-of-range value to fail the batch")
	}
	if n, _ := store.Len(ctx); n != 0 {
		t.Fatalf("failed batch must not leave rows behind, got %d", n)
	}
	if err := store.Add(ctx, 7, 8); err != nil {
		t.Fatalf("add batch: %v", err)
	}
	if n, _ := store.Len(ctx); n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
}
