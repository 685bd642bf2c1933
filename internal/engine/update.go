package engine

// Kind classifies an inbound update after transport-level parsing.
type Kind string

const (
	// KindStart is the /start command.
	KindStart Kind = "start"
	// KindLanguageChoice is a tap on one of the language picker buttons.
	KindLanguageChoice Kind = "language_choice"
	// KindRegister is a tap on the registration offer button.
	KindRegister Kind = "register"
	// KindMenuAction is a tap on any main-menu or sub-screen button.
	KindMenuAction Kind = "menu_action"
	// KindFreeText is any plain text message that is not a command.
	KindFreeText Kind = "free_text"
)

// Callback uniques shared between the screen builders and the transport
// parser. The payload travels after the unique in the callback data.
const (
	UniqueLanguage = "lang"
	UniqueRegister = "register"
	UniqueMenu     = "menu"
)

// Menu action payloads.
const (
	MenuStats          = "stats"
	MenuHistory        = "history"
	MenuDeposit        = "deposit"
	MenuWithdraw       = "withdraw"
	MenuChangeLanguage = "change_language"
	MenuBack           = "back"
)

// Update is one normalized inbound event. The transport layer fills it from
// a Telegram update; the engine never sees transport types.
type Update struct {
	Kind        Kind
	UserID      int64
	ChatID      int64
	DisplayName string

	// Language is the chosen code for KindLanguageChoice.
	Language string
	// Action is the menu payload for KindMenuAction.
	Action string
	// Text is the raw message body for KindFreeText.
	Text string
}
