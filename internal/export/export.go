// Package export saves backend snapshots to disk.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Fetcher retrieves the snapshot payload.
type Fetcher interface {
	ExportSnapshot(ctx context.Context) (json.RawMessage, error)
}

// Filename returns the export file name for a given day, e.g.
// "nbntrack-export-2026-08-31.json".
func Filename(day time.Time) string {
	return fmt.Sprintf("nbntrack-export-%s.json", day.Format("2006-01-02"))
}

// Write fetches the snapshot and writes it under dir, returning the
// full path. The payload is written byte-for-byte as the backend sent
// it; the client adds nothing and reshapes nothing.
func Write(ctx context.Context, f Fetcher, dir string, day time.Time) (string, error) {
	payload, err := f.ExportSnapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching export: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(dir, Filename(day))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
