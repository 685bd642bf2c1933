// Package session holds the per-user onboarding and demo-trading state.
//
// The store is intentionally in-memory only: a process restart loses all
// sessions. Local state is authoritative for the chat experience; the remote
// profile backend is a best-effort shadow copy.
package session

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stage identifies the onboarding step a session is in. A user without a
// session is implicitly in the "new" state and gets one on first contact.
type Stage string

const (
	// StageAwaitingLanguage means the language picker was shown and no
	// choice has been made yet.
	StageAwaitingLanguage Stage = "awaiting_language"
	// StageAwaitingRegistration means a language is set and the
	// registration offer is on screen.
	StageAwaitingRegistration Stage = "awaiting_registration"
	// StageActive is the steady state for registered users.
	StageActive Stage = "active"
)

// WelcomeBalance is the demo balance granted on registration:
// $10,000 demo funds plus the $10 welcome gift.
var WelcomeBalance = decimal.RequireFromString("10010.00")

// DemoBase is the demo principal used when deriving total profit.
var DemoBase = decimal.RequireFromString("10000.00")

// Trade is one closed demo trade. Immutable once appended.
type Trade struct {
	Profit     decimal.Decimal `json:"profit"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Session is the per-user record. Only the dispatch engine mutates it, and
// only through Store.Update.
type Session struct {
	UserID      int64
	DisplayName string
	Language    string
	Stage       Stage
	Registered  bool
	Balance     decimal.Decimal
	TotalTrades int
	WinRate     float64
	Trades      []Trade
	CreatedAt   time.Time
}

// Register flips the session into the registered state, granting the welcome
// balance and initializing all trading fields together. It is a no-op when
// the session is already registered, so the grant can never be applied twice.
func (s *Session) Register() {
	if s.Registered {
		return
	}
	s.Registered = true
	s.Balance = WelcomeBalance
	s.TotalTrades = 0
	s.WinRate = 0
	s.Trades = []Trade{}
	s.Stage = StageActive
}

// TotalProfit reports balance relative to the demo principal.
func (s *Session) TotalProfit() decimal.Decimal {
	return s.Balance.Sub(DemoBase)
}

// AppendTrade records one closed trade and updates the aggregates.
func (s *Session) AppendTrade(t Trade) {
	s.Trades = append(s.Trades, t)
	s.TotalTrades++
	s.Balance = s.Balance.Add(t.Profit)
	wins := 0
	for _, tr := range s.Trades {
		if tr.Profit.Sign() >= 0 {
			wins++
		}
	}
	s.WinRate = float64(wins) / float64(len(s.Trades)) * 100
}

// clone returns a deep copy safe to hand outside the store.
func (s *Session) clone() Session {
	out := *s
	if s.Trades != nil {
		out.Trades = make([]Trade, len(s.Trades))
		copy(out.Trades, s.Trades)
	}
	return out
}
