package middleware

import (
	"context"

	"tradex-bot/core/logger"

	tele "gopkg.in/telebot.v4"
)

const ctxStoreKey = "ctx"

// StoreContext attaches a request context to the telebot context so
// downstream handlers can recover it.
func StoreContext(c tele.Context, ctx context.Context) {
	c.Set(ctxStoreKey, ctx)
}

// Ctx returns the request context stored by the logging middleware, or the
// process background context when none was set.
func Ctx(c tele.Context) context.Context {
	if v := c.Get(ctxStoreKey); v != nil {
		if ctx, ok := v.(context.Context); ok {
			return ctx
		}
	}
	return logger.Background()
}
