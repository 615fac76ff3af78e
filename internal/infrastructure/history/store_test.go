package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/cictl/internal/domain"
)

func sampleRecord(id, description string, success bool) domain.RunRecord {
	return domain.RunRecord{
		ID:          id,
		Timestamp:   time.Now().UTC().Truncate(time.Second),
		Description: description,
		Command:     "echo test",
		Attempts:    1,
		ExitCode:    0,
		Success:     success,
		DurationMS:  12,
	}
}

func TestSQLiteStore_SaveAndRecords(t *testing.T) {
	store := NewSQLiteStoreAt(filepath.Join(t.TempDir(), "history.db"))

	if err := store.Save(sampleRecord("a", "install deps", true)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(sampleRecord("b", "upload artifact", false)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	filtered, err := store.Records(0, "upload")
	if err != nil {
		t.Fatalf("Records(search) error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].Description != "upload artifact" {
		t.Errorf("search returned %+v", filtered)
	}
}

func TestSQLiteStore_Clear(t *testing.T) {
	store := NewSQLiteStoreAt(filepath.Join(t.TempDir(), "history.db"))
	if err := store.Save(sampleRecord("a", "install", true)); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records after clear", len(records))
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := &FileStore{path: filepath.Join(t.TempDir(), "history.jsonl")}

	if err := store.Save(sampleRecord("a", "first", true)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(sampleRecord("b", "second", false)); err != nil {
		t.Fatal(err)
	}

	records, err := store.Records(1, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Description != "second" {
		t.Errorf("newest-first limit read = %+v", records)
	}
}
