package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradex-bot/internal/session"
)

func testSnapshot() Snapshot {
	return SnapshotOf(session.Session{
		UserID:      42,
		DisplayName: "Alice",
		Language:    "fr",
		Registered:  true,
		Balance:     session.WelcomeBalance,
		Trades:      []session.Trade{},
		CreatedAt:   time.Now(),
	})
}

func TestCreateTreatsCreatedAsSuccess(t *testing.T) {
	var got Snapshot
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.NoError(t, c.Create(context.Background(), testSnapshot()))
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "fr", got.Language)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("10010.00")))
}

func TestCreateTreatsConflictAsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	assert.NoError(t, c.Create(context.Background(), testSnapshot()))
}

func TestCreateServerErrorIsSyncError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.Create(context.Background(), testSnapshot())
	require.Error(t, err)
	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, http.StatusInternalServerError, syncErr.Status)
}

func TestCreateUnreachableBackendIsSyncError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	err := c.Create(context.Background(), testSnapshot())
	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/42":
			_ = json.NewEncoder(w).Encode(Profile{UserID: 42, Language: "fr", Registered: true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	p, err := c.Fetch(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "fr", p.Language)

	missing, err := c.Fetch(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQueueFiresAndForgets(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	q := NewQueue(NewClient(srv.URL, time.Second), QueueOptions{Workers: 2})
	defer q.Close()

	q.SyncCreate(testSnapshot())
	q.SyncCreate(testSnapshot())

	require.Eventually(t, func() bool { return calls.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, q.ErrorCount())
}

func TestQueueSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	q := NewQueue(NewClient(srv.URL, time.Second), QueueOptions{Workers: 1})
	defer q.Close()

	q.SyncCreate(testSnapshot())
	require.Eventually(t, func() bool { return q.ErrorCount() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestQueueDropsAfterClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	q := NewQueue(NewClient(srv.URL, time.Second), QueueOptions{Workers: 1})
	q.Close()

	q.SyncCreate(testSnapshot())
	assert.Equal(t, uint64(1), q.DroppedCount())
}
