package telegram

import (
	"github.com/samber/lo"

	"tradex-bot/internal/engine"

	tele "gopkg.in/telebot.v4"
)

// buttonsPerRow is the inline keyboard width for callback buttons. Mini-app
// buttons always get a full row.
const buttonsPerRow = 2

// Renderer turns engine render requests into telebot messages. It owns the
// only piece of transport state the engine does not know about: the mini-app
// base URL the trade button points at.
type Renderer struct {
	miniAppBase string
}

// NewRenderer builds a renderer handing off to the given mini-app base URL.
func NewRenderer(miniAppBase string) *Renderer {
	return &Renderer{miniAppBase: miniAppBase}
}

// Markup lays out the inline keyboard for a render request.
func (r *Renderer) Markup(rr engine.RenderRequest) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	var rows []tele.Row
	var callbacks []tele.Btn

	for _, a := range rr.Actions {
		if a.WebAppQuery != nil {
			url := r.miniAppBase + "?" + a.WebAppQuery.Encode()
			rows = append(rows, markup.Row(markup.WebApp(a.Label, &tele.WebApp{URL: url})))
			continue
		}
		callbacks = append(callbacks, markup.Data(a.Label, a.Unique, a.Data))
	}
	for _, chunk := range lo.Chunk(callbacks, buttonsPerRow) {
		rows = append(rows, markup.Row(chunk...))
	}

	markup.Inline(rows...)
	return markup
}
