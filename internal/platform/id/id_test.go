package id_test

import (
	"testing"

	"github.com/google/uuid"

	"numdraw/internal/platform/id"
)

func TestUUIDGeneratesParseableIDs(t *testing.T) {
	t.Parallel()
	gen := id.UUID{}
	a, b := gen.New(), gen.New()
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected valid uuid: %v", err)
	}
}

func TestSnowflakeIDsAreUnique(t *testing.T) {
	t.Parallel()
	gen, err := id.NewSnowflake(1)
	if err != nil {
		t.Fatalf("new snowflake: %v", err)
	}
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		v := gen.New()
		if _, ok := seen[v]; ok {
			t.Fatalf("duplicate id %s", v)
		}
		seen[v] = struct{}{}
	}
	if _, err := id.NewSnowflake(-1); err == nil {
		t.Fatalf("negative node id should fail")
	}
}
