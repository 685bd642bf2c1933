package middleware

import (
	"log/slog"
	"runtime/debug"

	"tradex-bot/core/logger"

	tele "gopkg.in/telebot.v4"
)

// Recover catches panics in handlers so one bad update cannot take the bot
// down.
func Recover(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(Ctx(c), "tg", "panic",
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		return next(c)
	}
}
