package sharecard

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordHitIncrements(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.RecordHit("15-08-2024-EN", "EN"); err != nil {
			t.Fatalf("RecordHit: %v", err)
		}
	}

	top, err := s.TopSlugs(10)
	if err != nil {
		t.Fatalf("TopSlugs: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("len(top) = %d, want 1", len(top))
	}
	if top[0].Hits != 3 {
		t.Errorf("Hits = %d, want 3", top[0].Hits)
	}
	if top[0].Language != "EN" {
		t.Errorf("Language = %q, want EN", top[0].Language)
	}
	if top[0].LastHit == "" {
		t.Error("LastHit is empty")
	}
}

func TestTopSlugsOrdersByHits(t *testing.T) {
	s := setupTestStore(t)

	s.RecordHit("01-01-2025-TA", "TA")
	s.RecordHit("15-08-2024-EN", "EN")
	s.RecordHit("15-08-2024-EN", "EN")

	top, err := s.TopSlugs(10)
	if err != nil {
		t.Fatalf("TopSlugs: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	if top[0].Slug != "15-08-2024-EN" {
		t.Errorf("top slug = %q, want 15-08-2024-EN", top[0].Slug)
	}

	limited, err := s.TopSlugs(1)
	if err != nil {
		t.Fatalf("TopSlugs(1): %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("len(limited) = %d, want 1", len(limited))
	}
}

func TestTotalHits(t *testing.T) {
	s := setupTestStore(t)

	if total, err := s.TotalHits(); err != nil || total != 0 {
		t.Fatalf("TotalHits on empty store = %d, %v; want 0, nil", total, err)
	}

	s.RecordHit("15-08-2024-EN", "EN")
	s.RecordHit("01-01-2025-TA", "TA")
	s.RecordHit("01-01-2025-TA", "TA")

	total, err := s.TotalHits()
	if err != nil {
		t.Fatalf("TotalHits: %v", err)
	}
	if total != 3 {
		t.Errorf("TotalHits = %d, want 3", total)
	}
}
