package telegram

import (
	"strings"
	"time"

	"tradex-bot/core/config"
	"tradex-bot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// DefaultMiddlewares builds the standard chain: panic recovery, optional
// per-user rate limiting, then request logging and context setup.
func DefaultMiddlewares(cfg *config.Config) []tele.MiddlewareFunc {
	mws := []tele.MiddlewareFunc{middleware.Recover}

	if cfg != nil {
		interval := time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond
		if interval > 0 {
			ex := make(map[string]struct{}, len(cfg.RateLimit.ExcludeUpdates))
			for _, t := range cfg.RateLimit.ExcludeUpdates {
				ex[strings.ToLower(t)] = struct{}{}
			}
			mws = append(mws, middleware.RateLimit(middleware.RateLimitOptions{
				Interval: interval,
				Exclude:  ex,
			}))
		}
	}

	mws = append(mws, middleware.Logging)
	return mws
}
