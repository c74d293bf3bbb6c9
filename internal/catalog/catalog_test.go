package catalog

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/Faultbox/planetgen/internal/planet"
)

func generate(t *testing.T, seed int64) *planet.Planet {
	t.Helper()
	d := planet.DefaultDescriptor()
	d.SubdivisionDepth = 1
	d.Forestation = 0.05
	p, err := planet.Generate(context.Background(), d, planet.DefaultOptions(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return p
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	p := generate(t, 1)

	seed := int64(99)
	if _, err := s.Record(ctx, p, &seed); err != nil {
		t.Fatalf("record: %v", err)
	}

	e, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.ID != p.ID {
		t.Errorf("expected id %s, got %s", p.ID, e.ID)
	}
	if e.Descriptor != p.Descriptor {
		t.Errorf("expected descriptor %+v, got %+v", p.Descriptor, e.Descriptor)
	}
	if e.Temperature != p.Temperature {
		t.Errorf("expected temperature %v, got %v", p.Temperature, e.Temperature)
	}
	if e.Stats.Triangles != p.Stats.Triangles || e.Stats.Chunks != p.Stats.Chunks {
		t.Errorf("stats not preserved: %+v", e.Stats)
	}
	if e.SystemSeed == nil || *e.SystemSeed != 99 {
		t.Errorf("expected system seed 99, got %v", e.SystemSeed)
	}
}

func TestGetMissing(t *testing.T) {
	s := openStore(t)
	_, err := s.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListAndCount(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for seed := int64(1); seed <= 3; seed++ {
		if _, err := s.Record(ctx, generate(t, seed), nil); err != nil {
			t.Fatalf("record %d: %v", seed, err)
		}
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 entries, got %d", n)
	}

	entries, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.SystemSeed != nil {
			t.Errorf("expected no system seed, got %d", *e.SystemSeed)
		}
	}
}

func TestRecordReplaces(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	p := generate(t, 5)

	for i := 0; i < 2; i++ {
		if _, err := s.Record(ctx, p, nil); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 entry after re-recording, got %d", n)
	}
}
