package session

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateSeedsNewSession(t *testing.T) {
	st := NewStore()

	s, created := st.GetOrCreate(42, Seed{DisplayName: "Alice", Language: "en"})
	require.True(t, created)
	assert.Equal(t, int64(42), s.UserID)
	assert.Equal(t, "Alice", s.DisplayName)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, StageAwaitingLanguage, s.Stage)
	assert.False(t, s.Registered)
	assert.False(t, s.CreatedAt.IsZero())

	again, created := st.GetOrCreate(42, Seed{DisplayName: "Other"})
	assert.False(t, created)
	assert.Equal(t, "Alice", again.DisplayName)
	assert.Equal(t, 1, st.Len())
}

func TestGetMissing(t *testing.T) {
	st := NewStore()
	_, ok := st.Get(7)
	assert.False(t, ok)
	_, ok = st.Update(7, func(*Session) { t.Fatal("mutator must not run") })
	assert.False(t, ok)
}

func TestUpdateReturnsCopy(t *testing.T) {
	st := NewStore()
	st.GetOrCreate(1, Seed{DisplayName: "A"})

	snap, ok := st.Update(1, func(s *Session) {
		s.Register()
		s.AppendTrade(Trade{
			Profit:     decimal.RequireFromString("5.50"),
			Percentage: decimal.RequireFromString("1.2"),
		})
	})
	require.True(t, ok)
	assert.True(t, snap.Registered)
	assert.Equal(t, 1, snap.TotalTrades)

	// Mutating the returned copy must not leak into the store.
	snap.Trades[0].Profit = decimal.RequireFromString("-999")
	snap.Balance = decimal.Zero

	fresh, ok := st.Get(1)
	require.True(t, ok)
	assert.Equal(t, "5.5", fresh.Trades[0].Profit.String())
	assert.Equal(t, "10015.5", fresh.Balance.String())
}

func TestRegisterIsIdempotent(t *testing.T) {
	st := NewStore()
	st.GetOrCreate(1, Seed{})
	st.Update(1, func(s *Session) { s.Register() })
	st.Update(1, func(s *Session) {
		s.AppendTrade(Trade{Profit: decimal.RequireFromString("100")})
	})
	snap, _ := st.Update(1, func(s *Session) { s.Register() })

	assert.Equal(t, "10110", snap.Balance.String())
	assert.Equal(t, 1, snap.TotalTrades)
	assert.Equal(t, StageActive, snap.Stage)
}

func TestUpdateIsAtomicPerUser(t *testing.T) {
	st := NewStore()
	st.GetOrCreate(1, Seed{})
	st.Update(1, func(s *Session) { s.Register() })

	const workers = 16
	const perWorker = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				st.Update(1, func(s *Session) {
					s.Balance = s.Balance.Add(decimal.New(1, 0))
				})
			}
		}()
	}
	wg.Wait()

	snap, _ := st.Get(1)
	want := WelcomeBalance.Add(decimal.New(workers*perWorker, 0))
	assert.True(t, snap.Balance.Equal(want), "balance %s != %s", snap.Balance, want)
}

func TestWinRate(t *testing.T) {
	st := NewStore()
	st.GetOrCreate(1, Seed{})
	snap, _ := st.Update(1, func(s *Session) {
		s.Register()
		s.AppendTrade(Trade{Profit: decimal.RequireFromString("10")})
		s.AppendTrade(Trade{Profit: decimal.RequireFromString("-4")})
	})
	assert.Equal(t, 2, snap.TotalTrades)
	assert.InDelta(t, 50.0, snap.WinRate, 0.001)
	assert.Equal(t, "16", snap.TotalProfit().String())
}
