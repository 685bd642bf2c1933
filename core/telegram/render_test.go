package telegram

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradex-bot/internal/engine"

	tele "gopkg.in/telebot.v4"
)

func menuRequest() engine.RenderRequest {
	return engine.RenderRequest{
		Screen: engine.ScreenMainMenu,
		Lang:   "fr",
		Text:   "menu",
		Actions: []engine.Action{
			{Label: "🚀 Trade", WebAppQuery: url.Values{"lang": {"fr"}, "user_id": {"42"}}},
			{Label: "Stats", Unique: engine.UniqueMenu, Data: engine.MenuStats},
			{Label: "History", Unique: engine.UniqueMenu, Data: engine.MenuHistory},
			{Label: "Deposit", Unique: engine.UniqueMenu, Data: engine.MenuDeposit},
			{Label: "Withdraw", Unique: engine.UniqueMenu, Data: engine.MenuWithdraw},
			{Label: "Language", Unique: engine.UniqueMenu, Data: engine.MenuChangeLanguage},
		},
	}
}

func TestMarkupLayout(t *testing.T) {
	r := NewRenderer("https://app.example.com/webapp")
	m := r.Markup(menuRequest())

	rows := m.InlineKeyboard
	// One full-width mini-app row, then five callback buttons in rows of two.
	require.Len(t, rows, 4)
	require.Len(t, rows[0], 1)
	require.Len(t, rows[1], 2)
	require.Len(t, rows[2], 2)
	require.Len(t, rows[3], 1)
}

func TestMarkupMiniAppHandoffURL(t *testing.T) {
	r := NewRenderer("https://app.example.com/webapp")
	m := r.Markup(menuRequest())

	btn := m.InlineKeyboard[0][0]
	require.NotNil(t, btn.WebApp)

	u, err := url.Parse(btn.WebApp.URL)
	require.NoError(t, err)
	assert.Equal(t, "app.example.com", u.Host)
	assert.Equal(t, "fr", u.Query().Get("lang"))
	assert.Equal(t, "42", u.Query().Get("user_id"))
}

func TestMarkupCallbackButtons(t *testing.T) {
	r := NewRenderer("https://app.example.com/webapp")
	m := r.Markup(engine.RenderRequest{
		Screen: engine.ScreenRegisterOffer,
		Actions: []engine.Action{
			{Label: "Register", Unique: engine.UniqueRegister},
		},
	})

	rows := m.InlineKeyboard
	require.Len(t, rows, 1)
	require.Len(t, rows[0], 1)
	assert.Equal(t, engine.UniqueRegister, rows[0][0].Unique)
}

func TestParseCallback(t *testing.T) {
	unique, payload := parseCallback(&tele.Callback{Data: "\flang|fr"})
	assert.Equal(t, "lang", unique)
	assert.Equal(t, "fr", payload)

	unique, payload = parseCallback(&tele.Callback{Data: "\fregister"})
	assert.Equal(t, "register", unique)
	assert.Empty(t, payload)

	unique, payload = parseCallback(&tele.Callback{Unique: "menu", Data: "stats"})
	assert.Equal(t, "menu", unique)
	assert.Equal(t, "stats", payload)

	unique, payload = parseCallback(nil)
	assert.Empty(t, unique)
	assert.Empty(t, payload)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Alice Smith", displayName(&tele.User{FirstName: "Alice", LastName: "Smith"}))
	assert.Equal(t, "Alice", displayName(&tele.User{FirstName: "Alice"}))
	assert.Equal(t, "alice42", displayName(&tele.User{Username: "alice42"}))
	assert.Equal(t, "Trader", displayName(&tele.User{}))
}
