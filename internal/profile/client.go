// Package profile replicates session state to the external profile backend.
//
// Replication is best effort by design: the chat flow never waits on the
// backend and never observes its failures. Local session state stays
// authoritative; the remote profile is a shadow copy.
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"tradex-bot/internal/session"
)

// Snapshot is the wire payload replicated to the backend. It is built from a
// session copy; the sync path never touches live session state.
type Snapshot struct {
	UserID      int64           `json:"user_id"`
	DisplayName string          `json:"display_name"`
	Language    string          `json:"language"`
	Registered  bool            `json:"registered"`
	Balance     decimal.Decimal `json:"balance"`
	TotalTrades int             `json:"total_trades"`
	WinRate     float64         `json:"win_rate"`
	Trades      []session.Trade `json:"transactions"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SnapshotOf captures the replication payload from a session copy.
func SnapshotOf(s session.Session) Snapshot {
	return Snapshot{
		UserID:      s.UserID,
		DisplayName: s.DisplayName,
		Language:    s.Language,
		Registered:  s.Registered,
		Balance:     s.Balance,
		TotalTrades: s.TotalTrades,
		WinRate:     s.WinRate,
		Trades:      s.Trades,
		CreatedAt:   s.CreatedAt,
	}
}

// Profile is the backend's view of a user as returned by fetch.
type Profile struct {
	UserID      int64           `json:"user_id"`
	DisplayName string          `json:"display_name"`
	Language    string          `json:"language"`
	Registered  bool            `json:"registered"`
	Balance     decimal.Decimal `json:"balance"`
	TotalTrades int             `json:"total_trades"`
	WinRate     float64         `json:"win_rate"`
}

// SyncError wraps any create failure that is not an idempotent-success
// status. It is logged and counted by the queue, never surfaced to users.
type SyncError struct {
	Status int
	Err    error
}

func (e *SyncError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile sync: %v", e.Err)
	}
	return fmt.Sprintf("profile sync: unexpected status %d", e.Status)
}

func (e *SyncError) Unwrap() error { return e.Err }

// Client talks to the profile backend HTTP API.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client for the given API base URL (no trailing slash).
// A zero timeout falls back to 5s.
func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
	}
}

// Create replicates a snapshot with create-or-exists semantics: both 2xx and
// 409 (already exists) count as success. Everything else is a *SyncError.
func (c *Client) Create(ctx context.Context, snap Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return &SyncError{Err: fmt.Errorf("encode snapshot: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/user", bytes.NewReader(body))
	if err != nil {
		return &SyncError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &SyncError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		// Idempotent create: the profile already exists.
		return nil
	default:
		return &SyncError{Status: resp.StatusCode}
	}
}

// Fetch retrieves a profile. A 404 yields (nil, nil).
func (c *Client) Fetch(ctx context.Context, userID int64) (*Profile, error) {
	url := fmt.Sprintf("%s/user/%d", c.base, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var p Profile
		if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		return &p, nil
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("profile fetch: unexpected status %d", resp.StatusCode)
	}
}
