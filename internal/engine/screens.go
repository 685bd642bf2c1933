package engine

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tradex-bot/internal/i18n"
	"tradex-bot/internal/session"
)

// ScreenID names a renderable screen. The transport layer uses it to pick a
// keyboard layout; the text is already final.
type ScreenID string

const (
	ScreenLanguageSelect  ScreenID = "language_select"
	ScreenRegisterOffer   ScreenID = "register_offer"
	ScreenRegisterSuccess ScreenID = "register_success"
	ScreenMainMenu        ScreenID = "main_menu"
	ScreenStats           ScreenID = "stats"
	ScreenHistory         ScreenID = "history"
	ScreenDeposit         ScreenID = "deposit"
	ScreenWithdraw        ScreenID = "withdraw"
	ScreenReminder        ScreenID = "reminder"
)

// Action is one inline button. Callback buttons carry Unique and Data;
// mini-app buttons carry WebAppQuery instead and the transport appends it to
// the configured mini-app base URL.
type Action struct {
	Label       string
	Unique      string
	Data        string
	WebAppQuery url.Values
}

// RenderRequest is the engine's complete answer to one update: what to show,
// in which language, with which buttons. Rendering it has no side effects on
// session state.
type RenderRequest struct {
	Screen  ScreenID
	Lang    string
	Text    string
	Actions []Action
}

// money renders a decimal as a dollar amount with thousands separators,
// e.g. 10010 -> "10,010.00".
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

func (e *Engine) tradeAction(s session.Session) Action {
	return Action{
		Label: e.i18n.Resolve(s.Language, i18n.KeyTradeButton),
		WebAppQuery: url.Values{
			"lang":    {s.Language},
			"user_id": {strconv.FormatInt(s.UserID, 10)},
		},
	}
}

func (e *Engine) backAction(lang string) Action {
	return Action{
		Label:  e.i18n.Resolve(lang, i18n.KeyBackButton),
		Unique: UniqueMenu,
		Data:   MenuBack,
	}
}

// languageSelect is always rendered in the default language: the user has
// not picked one yet, or is about to pick a new one.
func (e *Engine) languageSelect() RenderRequest {
	langs := e.i18n.Languages()
	actions := make([]Action, 0, len(langs))
	for _, l := range langs {
		actions = append(actions, Action{
			Label:  l.Flag + " " + l.Name,
			Unique: UniqueLanguage,
			Data:   l.Code,
		})
	}
	return RenderRequest{
		Screen:  ScreenLanguageSelect,
		Lang:    i18n.DefaultLanguage,
		Text:    e.i18n.Resolve(i18n.DefaultLanguage, i18n.KeyWelcomeSelectLanguage),
		Actions: actions,
	}
}

func (e *Engine) registerOffer(s session.Session) RenderRequest {
	return RenderRequest{
		Screen: ScreenRegisterOffer,
		Lang:   s.Language,
		Text:   e.i18n.Resolve(s.Language, i18n.KeyWelcomeRegister, s.DisplayName),
		Actions: []Action{{
			Label:  e.i18n.Resolve(s.Language, i18n.KeyRegisterButton),
			Unique: UniqueRegister,
		}},
	}
}

func (e *Engine) registerSuccess(s session.Session) RenderRequest {
	return RenderRequest{
		Screen:  ScreenRegisterSuccess,
		Lang:    s.Language,
		Text:    e.i18n.Resolve(s.Language, i18n.KeyRegisterSuccess),
		Actions: e.menuActions(s),
	}
}

func (e *Engine) menuActions(s session.Session) []Action {
	lang := s.Language
	return []Action{
		e.tradeAction(s),
		{Label: e.i18n.Resolve(lang, i18n.KeyStatsButton), Unique: UniqueMenu, Data: MenuStats},
		{Label: e.i18n.Resolve(lang, i18n.KeyHistoryButton), Unique: UniqueMenu, Data: MenuHistory},
		{Label: e.i18n.Resolve(lang, i18n.KeyDepositButton), Unique: UniqueMenu, Data: MenuDeposit},
		{Label: e.i18n.Resolve(lang, i18n.KeyWithdrawButton), Unique: UniqueMenu, Data: MenuWithdraw},
		{Label: e.i18n.Resolve(lang, i18n.KeyLanguageButton), Unique: UniqueMenu, Data: MenuChangeLanguage},
	}
}

func (e *Engine) mainMenu(s session.Session) RenderRequest {
	return RenderRequest{
		Screen: ScreenMainMenu,
		Lang:   s.Language,
		Text: e.i18n.Resolve(s.Language, i18n.KeyWelcomeExisting,
			s.DisplayName, money(s.Balance), s.TotalTrades, s.WinRate),
		Actions: e.menuActions(s),
	}
}

func (e *Engine) stats(s session.Session) RenderRequest {
	return RenderRequest{
		Screen: ScreenStats,
		Lang:   s.Language,
		Text: e.i18n.Resolve(s.Language, i18n.KeyStatsText,
			s.DisplayName, money(s.Balance), s.TotalTrades, s.WinRate, money(s.TotalProfit())),
		Actions: []Action{e.tradeAction(s), e.backAction(s.Language)},
	}
}

func (e *Engine) history(s session.Session) RenderRequest {
	var b strings.Builder
	b.WriteString(e.i18n.Resolve(s.Language, i18n.KeyHistoryTitle))
	b.WriteString("\n\n")
	if len(s.Trades) == 0 {
		b.WriteString(e.i18n.Resolve(s.Language, i18n.KeyNoTransactions))
	} else {
		for i, t := range s.Trades {
			mark := "✅"
			pct := "+" + t.Percentage.String()
			if t.Profit.Sign() < 0 {
				mark = "❌"
				pct = t.Percentage.String()
			}
			fmt.Fprintf(&b, e.i18n.Resolve(s.Language, i18n.KeyHistoryEntry),
				mark, i+1, t.Profit.StringFixed(2), pct)
			b.WriteByte('\n')
		}
	}
	return RenderRequest{
		Screen:  ScreenHistory,
		Lang:    s.Language,
		Text:    b.String(),
		Actions: []Action{e.tradeAction(s), e.backAction(s.Language)},
	}
}

func (e *Engine) deposit(s session.Session) RenderRequest {
	return RenderRequest{
		Screen:  ScreenDeposit,
		Lang:    s.Language,
		Text:    e.i18n.Resolve(s.Language, i18n.KeyDepositText, money(s.Balance)),
		Actions: []Action{e.tradeAction(s), e.backAction(s.Language)},
	}
}

func (e *Engine) withdraw(s session.Session) RenderRequest {
	return RenderRequest{
		Screen:  ScreenWithdraw,
		Lang:    s.Language,
		Text:    e.i18n.Resolve(s.Language, i18n.KeyWithdrawText, money(s.Balance)),
		Actions: []Action{e.tradeAction(s), e.backAction(s.Language)},
	}
}

func (e *Engine) reminder(s session.Session) RenderRequest {
	return RenderRequest{
		Screen:  ScreenReminder,
		Lang:    s.Language,
		Text:    e.i18n.Resolve(s.Language, i18n.KeyReminder),
		Actions: []Action{e.tradeAction(s)},
	}
}
