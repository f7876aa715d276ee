package wizardui

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestHistoryStoreRoundTrip(t *testing.T) {
	store, err := openHistoryStore(filepath.Join(t.TempDir(), "history.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, q := range []string{"page=finish", "page=finish&primaryDatabase=postgres"} {
		rec := downloadRecord{
			CreatedAt: stamp.Add(time.Duration(i) * time.Minute),
			Query:     q,
			Bytes:     int64(1000 + i),
			SHA256:    "deadbeef",
		}
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Newest first.
	if records[0].Query != "page=finish&primaryDatabase=postgres" {
		t.Fatalf("expected newest record first, got %q", records[0].Query)
	}
	if records[1].Bytes != 1000 || records[1].SHA256 != "deadbeef" {
		t.Fatalf("unexpected record: %+v", records[1])
	}
	if !records[1].CreatedAt.Equal(stamp) {
		t.Fatalf("expected timestamp %v, got %v", stamp, records[1].CreatedAt)
	}
}

func TestHistoryStoreHonoursLimit(t *testing.T) {
	store, err := openHistoryStore(filepath.Join(t.TempDir(), "history.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		rec := downloadRecord{CreatedAt: time.Now().UTC(), Query: "page=finish", Bytes: 1, SHA256: "ab"}
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	records, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}

func TestHistoryStoreRejectsEmptyPath(t *testing.T) {
	if _, err := openHistoryStore("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
