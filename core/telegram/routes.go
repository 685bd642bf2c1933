package telegram

import (
	"errors"
	"log/slog"
	"strings"

	"tradex-bot/core/logger"
	"tradex-bot/core/telegram/format"
	"tradex-bot/core/telegram/middleware"
	"tradex-bot/internal/engine"

	tele "gopkg.in/telebot.v4"
)

// Handler binds bot endpoints to the dispatch engine.
type Handler struct {
	engine *engine.Engine
	render *Renderer
}

// NewHandler wires handlers over the engine and renderer.
func NewHandler(e *engine.Engine, r *Renderer) *Handler {
	return &Handler{engine: e, render: r}
}

// Routes lists every endpoint the bot serves.
func (h *Handler) Routes() []Route {
	return []Route{
		{Endpoint: "/start", Handler: h.onStart},
		{Endpoint: tele.OnCallback, Handler: h.onCallback},
		{Endpoint: tele.OnText, Handler: h.onText},
	}
}

func (h *Handler) onStart(c tele.Context) error {
	u := baseUpdate(c)
	u.Kind = engine.KindStart
	return h.dispatch(c, u)
}

func (h *Handler) onText(c tele.Context) error {
	u := baseUpdate(c)
	u.Kind = engine.KindFreeText
	u.Text = c.Text()
	return h.dispatch(c, u)
}

func (h *Handler) onCallback(c tele.Context) error {
	unique, payload := parseCallback(c.Callback())

	u := baseUpdate(c)
	switch unique {
	case engine.UniqueLanguage:
		u.Kind = engine.KindLanguageChoice
		u.Language = payload
	case engine.UniqueRegister:
		u.Kind = engine.KindRegister
	case engine.UniqueMenu:
		u.Kind = engine.KindMenuAction
		u.Action = payload
	default:
		// Stale buttons from older bot versions fall through to the
		// engine's unknown-action handling.
		u.Kind = engine.KindMenuAction
		u.Action = unique
	}

	// Ack first so the button stops spinning even when rendering fails.
	if err := c.Respond(&tele.CallbackResponse{}); err != nil {
		logger.Debug(middleware.Ctx(c), "tg", "callback.ack.fail",
			slog.String("err", err.Error()),
		)
	}
	return h.dispatch(c, u)
}

func (h *Handler) dispatch(c tele.Context, u engine.Update) error {
	ctx := middleware.Ctx(c)
	rr, err := h.engine.Handle(ctx, u)
	if err != nil {
		logger.Error(ctx, "tg", "dispatch.fail",
			slog.String("kind", string(u.Kind)),
			slog.String("err", err.Error()),
		)
		return err
	}

	markup := h.render.Markup(rr)

	// Button taps edit the originating message in place; everything else
	// sends a fresh one.
	if c.Callback() != nil {
		err := c.Edit(rr.Text, markup, tele.ModeMarkdown)
		if err == nil || errors.Is(err, tele.ErrSameMessageContent) {
			return nil
		}
		logger.Debug(ctx, "tg", "edit.fallback",
			slog.String("screen", string(rr.Screen)),
			slog.String("err", err.Error()),
		)
	}
	return c.Send(rr.Text, markup, tele.ModeMarkdown)
}

func baseUpdate(c tele.Context) engine.Update {
	var u engine.Update
	if sender := c.Sender(); sender != nil {
		u.UserID = sender.ID
		u.DisplayName = format.EscapeMarkdown(displayName(sender))
	}
	if chat := c.Chat(); chat != nil {
		u.ChatID = chat.ID
	}
	return u
}

func displayName(u *tele.User) string {
	name := strings.TrimSpace(u.FirstName)
	if u.LastName != "" {
		name = strings.TrimSpace(name + " " + u.LastName)
	}
	if name == "" {
		name = u.Username
	}
	if name == "" {
		name = "Trader"
	}
	return name
}

func parseCallback(cb *tele.Callback) (string, string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), parts[1]
	}
	return strings.TrimSpace(parts[0]), ""
}
