package profiled

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	recs    map[int64]Record
	failing bool
}

func newMemStorage() *memStorage {
	return &memStorage{recs: make(map[int64]Record)}
}

func (m *memStorage) Insert(ctx context.Context, rec Record) error {
	if m.failing {
		return errors.New("storage down")
	}
	if _, ok := m.recs[rec.UserID]; ok {
		return ErrExists
	}
	m.recs[rec.UserID] = rec
	return nil
}

func (m *memStorage) Get(ctx context.Context, userID int64) (*Record, error) {
	if m.failing {
		return nil, errors.New("storage down")
	}
	rec, ok := m.recs[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func postUser(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCreateProfile(t *testing.T) {
	st := newMemStorage()
	h := NewServer(st).Handler()

	rec := Record{
		UserID:      42,
		DisplayName: "Alice",
		Language:    "fr",
		Registered:  true,
		Balance:     decimal.RequireFromString("10010.00"),
	}

	w := postUser(t, h, rec)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, json.RawMessage("[]"), created.Transactions)

	// Same user again: conflict, stored record untouched.
	w = postUser(t, h, rec)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, st.recs, 1)
}

func TestCreateProfileValidation(t *testing.T) {
	h := NewServer(newMemStorage()).Handler()

	w := postUser(t, h, Record{UserID: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/user", bytes.NewReader([]byte("{not json")))
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusBadRequest, rw.Code)
}

func TestGetProfile(t *testing.T) {
	st := newMemStorage()
	h := NewServer(st).Handler()
	postUser(t, h, Record{UserID: 42, Language: "fr", Balance: decimal.RequireFromString("10010.00")})

	req := httptest.NewRequest(http.MethodGet, "/user/42", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rec Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "fr", rec.Language)
	assert.True(t, rec.Balance.Equal(decimal.RequireFromString("10010.00")))
}

func TestGetProfileNotFound(t *testing.T) {
	h := NewServer(newMemStorage()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/user/7", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfileBadID(t *testing.T) {
	h := NewServer(newMemStorage()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/user/abc", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorageFailure(t *testing.T) {
	st := newMemStorage()
	st.failing = true
	h := NewServer(st).Handler()

	w := postUser(t, h, Record{UserID: 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/user/1", nil)
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	assert.Equal(t, http.StatusInternalServerError, rw.Code)
}
