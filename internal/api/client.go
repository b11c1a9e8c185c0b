// Package api provides the REST client for the nbntrack backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nbntrack/internal/model"

	"github.com/google/uuid"
)

const (
	apiPrefix   = "/api"
	maxBodySize = 4 << 20 // 4 MB
)

var (
	// ErrNotFound indicates the record no longer exists server-side.
	ErrNotFound = errors.New("api: not found")
	// ErrUnavailable indicates the backend rejected or dropped the request.
	ErrUnavailable = errors.New("api: backend unavailable")
)

// StatusError is returned for unexpected non-2xx responses.
type StatusError struct {
	Code   int
	Method string
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// Client talks to the tracker backend. All methods take a context and
// apply the configured per-request timeout.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     *slog.Logger
}

// New creates a client for the given base URL (without the /api suffix).
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
		log:     log,
	}
}

// ── Subscriptions ───────────────────────────────────────────────

func (c *Client) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	var out []model.Subscription
	if err := c.getJSON(ctx, "/subscriptions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSubscription(ctx context.Context, s model.Subscription) (model.Subscription, error) {
	var out model.Subscription
	err := c.send(ctx, http.MethodPost, "/subscriptions", s, &out)
	return out, err
}

func (c *Client) UpdateSubscription(ctx context.Context, id string, s model.Subscription) (model.Subscription, error) {
	var out model.Subscription
	err := c.send(ctx, http.MethodPut, "/subscriptions/"+id, s, &out)
	return out, err
}

func (c *Client) DeleteSubscription(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/subscriptions/"+id, nil, nil)
}

// ── Expenses ────────────────────────────────────────────────────

func (c *Client) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	var out []model.Expense
	if err := c.getJSON(ctx, "/expenses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateExpense(ctx context.Context, e model.Expense) (model.Expense, error) {
	var out model.Expense
	err := c.send(ctx, http.MethodPost, "/expenses", e, &out)
	return out, err
}

func (c *Client) UpdateExpense(ctx context.Context, id string, e model.Expense) (model.Expense, error) {
	var out model.Expense
	err := c.send(ctx, http.MethodPut, "/expenses/"+id, e, &out)
	return out, err
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/expenses/"+id, nil, nil)
}

// ── Budgets ─────────────────────────────────────────────────────

func (c *Client) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	var out []model.Budget
	if err := c.getJSON(ctx, "/budgets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBudget(ctx context.Context, b model.Budget) (model.Budget, error) {
	var out model.Budget
	err := c.send(ctx, http.MethodPost, "/budgets", b, &out)
	return out, err
}

func (c *Client) UpdateBudget(ctx context.Context, id string, b model.Budget) (model.Budget, error) {
	var out model.Budget
	err := c.send(ctx, http.MethodPut, "/budgets/"+id, b, &out)
	return out, err
}

func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/budgets/"+id, nil, nil)
}

// ── Derived / read-only ─────────────────────────────────────────

// Dashboard fetches the server-computed aggregates.
func (c *Client) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	var out model.DashboardStats
	err := c.getJSON(ctx, "/dashboard", &out)
	return out, err
}

// Suggestions fetches the advisory text list.
func (c *Client) Suggestions(ctx context.Context) ([]string, error) {
	var out model.SuggestionList
	if err := c.getJSON(ctx, "/suggestions", &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// ExportSnapshot fetches the full snapshot. The payload shape is owned
// by the backend and passed through untouched.
func (c *Client) ExportSnapshot(ctx context.Context) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/export", nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// ── Transport ───────────────────────────────────────────────────

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: parsing %s: %w", path, err)
	}
	return nil
}

// send issues a mutating request with an optional JSON body and decodes
// the response into out when out is non-nil.
func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: encoding %s: %w", path, err)
		}
	}

	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: parsing %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var rdr io.Reader
	if payload != nil {
		rdr = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// Correlation id for backend-side diagnostics.
		req.Header.Set("X-Request-Id", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "method", method, "path", path, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.log.Warn("unexpected status", "method", method, "path", path, "status", resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode, Method: method, Path: path}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response: %w", err)
	}
	return body, nil
}
