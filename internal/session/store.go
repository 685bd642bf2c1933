package session

import (
	"sync"
	"time"
)

// Seed carries the identity fields used when a session is first created.
type Seed struct {
	DisplayName string
	Language    string
}

// Store is a process-wide map from user id to session. Update is atomic per
// user id; operations on different users never contend beyond the brief
// bucket lookup.
type Store struct {
	mu      sync.RWMutex
	entries map[int64]*entry
	now     func() time.Time
}

type entry struct {
	mu sync.Mutex
	s  Session
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{
		entries: make(map[int64]*entry),
		now:     time.Now,
	}
}

// Get returns a copy of the session for a user, if one exists.
func (st *Store) Get(userID int64) (Session, bool) {
	st.mu.RLock()
	e, ok := st.entries[userID]
	st.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.clone(), true
}

// GetOrCreate returns the session for a user, creating one from seed on
// first contact. The created bool reports whether this call created it.
func (st *Store) GetOrCreate(userID int64, seed Seed) (Session, bool) {
	e, created := st.entryFor(userID, seed)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.clone(), created
}

// Update applies mutate to the user's session under its lock and returns the
// resulting copy. It reports false when the user has no session; mutate is
// not called in that case.
func (st *Store) Update(userID int64, mutate func(*Session)) (Session, bool) {
	st.mu.RLock()
	e, ok := st.entries[userID]
	st.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	mutate(&e.s)
	return e.s.clone(), true
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}

func (st *Store) entryFor(userID int64, seed Seed) (*entry, bool) {
	st.mu.RLock()
	e, ok := st.entries[userID]
	st.mu.RUnlock()
	if ok {
		return e, false
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if e, ok := st.entries[userID]; ok {
		return e, false
	}
	lang := seed.Language
	if lang == "" {
		lang = "en"
	}
	e = &entry{s: Session{
		UserID:      userID,
		DisplayName: seed.DisplayName,
		Language:    lang,
		Stage:       StageAwaitingLanguage,
		CreatedAt:   st.now(),
	}}
	st.entries[userID] = e
	return e, true
}
