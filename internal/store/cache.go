package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"nbntrack/internal/model"
)

// ErrCacheMiss means a slot has never been cached.
var ErrCacheMiss = errors.New("store: cache miss")

// Cache is a last-known-good snapshot of backend responses, kept in
// SQLite so the CLI can render something when the backend is down.
// The server stays authoritative; this is never written by the user.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	slot       TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	fetched_at TEXT NOT NULL
);`

// OpenCache opens (creating if needed) the snapshot cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// put stores the JSON encoding of v under slot.
func (c *Cache) put(slot Slot, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", slot, err)
	}
	_, err = c.db.Exec(
		`INSERT INTO snapshots (slot, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		string(slot), payload, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("caching %s snapshot: %w", slot, err)
	}
	return nil
}

// get loads the snapshot for slot into out and returns when it was fetched.
func (c *Cache) get(slot Slot, out any) (time.Time, error) {
	var payload []byte
	var fetchedAt string
	err := c.db.QueryRow(`SELECT payload, fetched_at FROM snapshots WHERE slot = ?`, string(slot)).
		Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrCacheMiss
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("reading %s snapshot: %w", slot, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return time.Time{}, fmt.Errorf("decoding %s snapshot: %w", slot, err)
	}
	at, _ := time.Parse(time.RFC3339, fetchedAt)
	return at, nil
}

func (c *Cache) SaveSubscriptions(items []model.Subscription) error {
	return c.put(SlotSubscriptions, items)
}

func (c *Cache) LoadSubscriptions() ([]model.Subscription, time.Time, error) {
	var out []model.Subscription
	at, err := c.get(SlotSubscriptions, &out)
	return out, at, err
}

func (c *Cache) SaveExpenses(items []model.Expense) error {
	return c.put(SlotExpenses, items)
}

func (c *Cache) LoadExpenses() ([]model.Expense, time.Time, error) {
	var out []model.Expense
	at, err := c.get(SlotExpenses, &out)
	return out, at, err
}

func (c *Cache) SaveBudgets(items []model.Budget) error {
	return c.put(SlotBudgets, items)
}

func (c *Cache) LoadBudgets() ([]model.Budget, time.Time, error) {
	var out []model.Budget
	at, err := c.get(SlotBudgets, &out)
	return out, at, err
}

func (c *Cache) SaveStats(stats model.DashboardStats) error {
	return c.put(SlotStats, stats)
}

func (c *Cache) LoadStats() (model.DashboardStats, time.Time, error) {
	var out model.DashboardStats
	at, err := c.get(SlotStats, &out)
	return out, at, err
}
