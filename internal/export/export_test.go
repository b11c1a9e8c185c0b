package export

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeFetcher struct {
	payload json.RawMessage
	err     error
}

func (f fakeFetcher) ExportSnapshot(ctx context.Context) (json.RawMessage, error) {
	return f.payload, f.err
}

func TestFilename(t *testing.T) {
	day := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	if got, want := Filename(day), "nbntrack-export-2026-08-31.json"; got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestWritePassThrough(t *testing.T) {
	// Whitespace and key order must survive untouched.
	payload := json.RawMessage(`{"expenses": [],  "export_date":"2026-08-31"}`)
	dir := t.TempDir()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	path, err := Write(context.Background(), fakeFetcher{payload: payload}, dir, day)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if want := filepath.Join(dir, "nbntrack-export-2026-08-31.json"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload altered:\ngot  %s\nwant %s", got, payload)
	}
}

func TestWriteFetchError(t *testing.T) {
	_, err := Write(context.Background(), fakeFetcher{err: errors.New("down")}, t.TempDir(), time.Now())
	if err == nil {
		t.Fatal("expected fetch error")
	}
}
