// Package engine is the update-dispatch state machine. It consumes normalized
// updates, advances per-user session state and answers with exactly one
// screen to render. All replies happen on the calling goroutine so screens
// for one user can never be delivered out of order; only profile replication
// leaves the dispatch path.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tradex-bot/core/logger"
	"tradex-bot/internal/i18n"
	"tradex-bot/internal/profile"
	"tradex-bot/internal/session"
)

const component = "engine"

// Engine routes updates through the onboarding state machine.
type Engine struct {
	store *session.Store
	i18n  *i18n.Resolver
	sync  profile.Syncer

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// New wires the engine over its collaborators. The syncer may be nil when
// profile replication is disabled.
func New(store *session.Store, resolver *i18n.Resolver, syncer profile.Syncer) *Engine {
	return &Engine{
		store: store,
		i18n:  resolver,
		sync:  syncer,
		locks: make(map[int64]*sync.Mutex),
	}
}

// userLock returns the per-user dispatch lock, creating it on first use.
// Locks are never evicted; one mutex per user seen is cheap enough.
func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[userID] = l
	}
	return l
}

// Handle processes one update and returns the screen to render. Updates for
// the same user are serialized; different users proceed concurrently.
func (e *Engine) Handle(ctx context.Context, u Update) (RenderRequest, error) {
	if u.UserID == 0 {
		return RenderRequest{}, fmt.Errorf("engine: update without user id")
	}

	l := e.userLock(u.UserID)
	l.Lock()
	defer l.Unlock()

	switch u.Kind {
	case KindStart:
		return e.handleStart(ctx, u), nil
	case KindLanguageChoice:
		return e.handleLanguageChoice(ctx, u), nil
	case KindRegister:
		return e.handleRegister(ctx, u), nil
	case KindMenuAction:
		return e.handleMenu(ctx, u), nil
	case KindFreeText:
		return e.handleFreeText(ctx, u), nil
	default:
		return RenderRequest{}, fmt.Errorf("engine: unknown update kind %q", u.Kind)
	}
}

// touch loads the user's session, creating it on first contact, and keeps the
// display name current with what Telegram reports.
func (e *Engine) touch(u Update) session.Session {
	s, created := e.store.GetOrCreate(u.UserID, session.Seed{
		DisplayName: u.DisplayName,
		Language:    i18n.DefaultLanguage,
	})
	if created {
		logger.Info(logger.Background(), component, "session.created",
			slog.Int64("user_id", u.UserID),
		)
		return s
	}
	if u.DisplayName != "" && u.DisplayName != s.DisplayName {
		s, _ = e.store.Update(u.UserID, func(s *session.Session) {
			s.DisplayName = u.DisplayName
		})
	}
	return s
}

func (e *Engine) handleStart(ctx context.Context, u Update) RenderRequest {
	s := e.touch(u)
	switch s.Stage {
	case session.StageAwaitingRegistration:
		return e.registerOffer(s)
	case session.StageActive:
		return e.mainMenu(s)
	default:
		return e.languageSelect()
	}
}

func (e *Engine) handleLanguageChoice(ctx context.Context, u Update) RenderRequest {
	s := e.touch(u)
	if !e.i18n.Supported(u.Language) {
		logger.Warn(ctx, component, "language.unsupported",
			slog.Int64("user_id", u.UserID),
			slog.String("lang", logger.SanitizeLimit(u.Language, 16)),
		)
		return e.languageSelect()
	}

	s, _ = e.store.Update(u.UserID, func(s *session.Session) {
		s.Language = u.Language
		if s.Registered {
			s.Stage = session.StageActive
		} else {
			s.Stage = session.StageAwaitingRegistration
		}
	})
	logger.Info(ctx, component, "language.set",
		slog.Int64("user_id", u.UserID),
		slog.String("lang", u.Language),
	)

	if s.Registered {
		return e.mainMenu(s)
	}
	return e.registerOffer(s)
}

func (e *Engine) handleRegister(ctx context.Context, u Update) RenderRequest {
	s := e.touch(u)
	if s.Stage == session.StageAwaitingLanguage {
		return e.languageSelect()
	}
	if s.Registered {
		// A stale button tap; registering twice must not re-grant the gift.
		return e.mainMenu(s)
	}

	s, _ = e.store.Update(u.UserID, func(s *session.Session) {
		s.Register()
	})
	logger.Info(ctx, component, "user.registered",
		slog.Int64("user_id", u.UserID),
		slog.String("lang", s.Language),
	)

	// The snapshot is taken after the local commit, so the replicated copy
	// always carries the welcome balance.
	if e.sync != nil {
		e.sync.SyncCreate(profile.SnapshotOf(s))
	}
	return e.registerSuccess(s)
}

func (e *Engine) handleMenu(ctx context.Context, u Update) RenderRequest {
	s := e.touch(u)
	switch s.Stage {
	case session.StageAwaitingLanguage:
		return e.languageSelect()
	case session.StageAwaitingRegistration:
		return e.registerOffer(s)
	}

	switch u.Action {
	case MenuStats:
		return e.stats(s)
	case MenuHistory:
		return e.history(s)
	case MenuDeposit:
		return e.deposit(s)
	case MenuWithdraw:
		return e.withdraw(s)
	case MenuChangeLanguage:
		// Back to the picker stage; registration survives the round trip.
		e.store.Update(u.UserID, func(s *session.Session) {
			s.Stage = session.StageAwaitingLanguage
		})
		return e.languageSelect()
	case MenuBack:
		return e.mainMenu(s)
	default:
		logger.Warn(ctx, component, "menu.unknown",
			slog.Int64("user_id", u.UserID),
			slog.String("action", logger.SanitizeLimit(u.Action, 32)),
		)
		return e.reminder(s)
	}
}

func (e *Engine) handleFreeText(ctx context.Context, u Update) RenderRequest {
	s := e.touch(u)
	switch s.Stage {
	case session.StageAwaitingLanguage:
		return e.languageSelect()
	case session.StageAwaitingRegistration:
		return e.registerOffer(s)
	default:
		return e.reminder(s)
	}
}
