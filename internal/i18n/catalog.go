package i18n

// Text keys used by the screen builders.
const (
	KeyWelcomeSelectLanguage = "welcome_select_language"
	KeyWelcomeRegister       = "welcome_register"
	KeyRegisterButton        = "register_button"
	KeyRegisterSuccess       = "register_success"
	KeyWelcomeExisting       = "welcome_existing"
	KeyTradeButton           = "trade_button"
	KeyStatsButton           = "stats_button"
	KeyHistoryButton         = "history_button"
	KeyDepositButton         = "deposit_button"
	KeyWithdrawButton        = "withdraw_button"
	KeyLanguageButton        = "language_button"
	KeyBackButton            = "back_button"
	KeyStatsText             = "stats_text"
	KeyHistoryTitle          = "history_title"
	KeyHistoryEntry          = "history_entry"
	KeyNoTransactions        = "no_transactions"
	KeyDepositText           = "deposit_text"
	KeyWithdrawText          = "withdraw_text"
	KeyReminder              = "reminder"
)

// RequiredKeys lists every key the screens resolve. The default language
// table is validated against this set at startup.
func RequiredKeys() []string {
	return []string{
		KeyWelcomeSelectLanguage,
		KeyWelcomeRegister,
		KeyRegisterButton,
		KeyRegisterSuccess,
		KeyWelcomeExisting,
		KeyTradeButton,
		KeyStatsButton,
		KeyHistoryButton,
		KeyDepositButton,
		KeyWithdrawButton,
		KeyLanguageButton,
		KeyBackButton,
		KeyStatsText,
		KeyHistoryTitle,
		KeyHistoryEntry,
		KeyNoTransactions,
		KeyDepositText,
		KeyWithdrawText,
		KeyReminder,
	}
}

// languages drives the picker layout; order is presentation order.
var languages = []Language{
	{Code: "en", Flag: "🇬🇧", Name: "English"},
	{Code: "es", Flag: "🇪🇸", Name: "Español"},
	{Code: "fr", Flag: "🇫🇷", Name: "Français"},
	{Code: "de", Flag: "🇩🇪", Name: "Deutsch"},
	{Code: "ru", Flag: "🇷🇺", Name: "Русский"},
	{Code: "pt", Flag: "🇵🇹", Name: "Português"},
	{Code: "tr", Flag: "🇹🇷", Name: "Türkçe"},
	{Code: "ar", Flag: "🇸🇦", Name: "العربية"},
	{Code: "hi", Flag: "🇮🇳", Name: "हिन्दी"},
	{Code: "zh", Flag: "🇨🇳", Name: "中文"},
	{Code: "ja", Flag: "🇯🇵", Name: "日本語"},
}

var catalog = map[string]map[string]string{
	"en": {
		KeyWelcomeSelectLanguage: "🌍 *Welcome to TradeX Pro!*\n\nPlease select your language:",
		KeyWelcomeRegister:       "🚀 *Welcome to TradeX Pro, %s!*\n\nRegister now and receive a *$10 welcome gift* on top of your $10,000 demo account.\n\n🎁 Tap below to claim it!",
		KeyRegisterButton:        "🎁 Claim $10 & Register",
		KeyRegisterSuccess:       "🎉 *Registration complete!*\n\n💰 Your $10 gift has been credited — demo balance: *$10,010.00*.\n\nReady for your first trade?",
		KeyWelcomeExisting:       "👋 *Welcome back, %s!*\n\n💰 Balance: *$%s*\n📈 Trades: *%d*\n🏆 Win rate: *%.1f%%*",
		KeyTradeButton:           "🚀 Trade Now",
		KeyStatsButton:           "📊 My Stats",
		KeyHistoryButton:         "📜 History",
		KeyDepositButton:         "💰 Deposit",
		KeyWithdrawButton:        "💸 Withdraw",
		KeyLanguageButton:        "🌍 Language",
		KeyBackButton:            "🔙 Back",
		KeyStatsText:             "📊 *My Statistics*\n\n👤 *%s*\n💰 Balance: $%s\n📈 Total trades: %d\n🏆 Win rate: %.1f%%\n📊 Total profit: $%s\n\n🚀 Ready to trade more?",
		KeyHistoryTitle:          "📜 *Transaction History*",
		KeyHistoryEntry:          "%s *Trade %d:* $%s (%s%%)",
		KeyNoTransactions:        "No trades yet — your history will appear here.",
		KeyDepositText:           "💰 *Deposit*\n\n🎮 Demo mode active — you have *$%s* in demo funds.\n\n🔜 Real deposits are coming soon. Enjoy unlimited demo trading for now!",
		KeyWithdrawText:          "💸 *Withdraw*\n\n🎮 Demo mode — your balance: *$%s*.\n\n🔜 Real withdrawals are coming soon. Keep trading to grow your demo balance!",
		KeyReminder:              "🤖 Ready to trade? Tap the button below!",
	},
	"es": {
		KeyWelcomeRegister: "🚀 *¡Bienvenido a TradeX Pro, %s!*\n\nRegístrate ahora y recibe un *regalo de $10* además de tu cuenta demo de $10,000.\n\n🎁 ¡Toca abajo para reclamarlo!",
		KeyRegisterButton:  "🎁 Reclamar $10 y registrarse",
		KeyRegisterSuccess: "🎉 *¡Registro completado!*\n\n💰 Tu regalo de $10 fue acreditado — saldo demo: *$10,010.00*.\n\n¿Listo para tu primera operación?",
		KeyWelcomeExisting: "👋 *¡Hola de nuevo, %s!*\n\n💰 Saldo: *$%s*\n📈 Operaciones: *%d*\n🏆 Tasa de acierto: *%.1f%%*",
		KeyTradeButton:     "🚀 Operar ahora",
		KeyStatsButton:     "📊 Mis estadísticas",
		KeyHistoryButton:   "📜 Historial",
		KeyDepositButton:   "💰 Depositar",
		KeyWithdrawButton:  "💸 Retirar",
		KeyLanguageButton:  "🌍 Idioma",
		KeyBackButton:      "🔙 Atrás",
		KeyHistoryTitle:    "📜 *Historial de operaciones*",
		KeyNoTransactions:  "Aún no hay operaciones — tu historial aparecerá aquí.",
		KeyReminder:        "🤖 ¿Listo para operar? ¡Toca el botón de abajo!",
	},
	"fr": {
		KeyWelcomeRegister: "🚀 *Bienvenue sur TradeX Pro, %s !*\n\nInscrivez-vous maintenant et recevez un *cadeau de 10 $* en plus de votre compte démo de 10 000 $.\n\n🎁 Touchez ci-dessous pour le réclamer !",
		KeyRegisterButton:  "🎁 Réclamer 10 $ et s'inscrire",
		KeyRegisterSuccess: "🎉 *Inscription terminée !*\n\n💰 Votre cadeau de 10 $ a été crédité — solde démo : *10 010,00 $*.\n\nPrêt pour votre premier trade ?",
		KeyWelcomeExisting: "👋 *Bon retour, %s !*\n\n💰 Solde : *$%s*\n📈 Trades : *%d*\n🏆 Taux de réussite : *%.1f%%*",
		KeyTradeButton:     "🚀 Trader maintenant",
		KeyStatsButton:     "📊 Mes statistiques",
		KeyHistoryButton:   "📜 Historique",
		KeyDepositButton:   "💰 Dépôt",
		KeyWithdrawButton:  "💸 Retrait",
		KeyLanguageButton:  "🌍 Langue",
		KeyBackButton:      "🔙 Retour",
		KeyHistoryTitle:    "📜 *Historique des transactions*",
		KeyNoTransactions:  "Pas encore de trades — votre historique apparaîtra ici.",
		KeyReminder:        "🤖 Prêt à trader ? Touchez le bouton ci-dessous !",
	},
	"de": {
		KeyWelcomeRegister: "🚀 *Willkommen bei TradeX Pro, %s!*\n\nRegistriere dich jetzt und erhalte ein *$10-Willkommensgeschenk* zusätzlich zu deinem $10.000-Demokonto.\n\n🎁 Tippe unten, um es einzulösen!",
		KeyRegisterButton:  "🎁 $10 sichern & registrieren",
		KeyRegisterSuccess: "🎉 *Registrierung abgeschlossen!*\n\n💰 Dein $10-Geschenk wurde gutgeschrieben — Demo-Guthaben: *$10.010,00*.\n\nBereit für deinen ersten Trade?",
		KeyWelcomeExisting: "👋 *Willkommen zurück, %s!*\n\n💰 Guthaben: *$%s*\n📈 Trades: *%d*\n🏆 Erfolgsquote: *%.1f%%*",
		KeyTradeButton:     "🚀 Jetzt handeln",
		KeyStatsButton:     "📊 Meine Statistik",
		KeyHistoryButton:   "📜 Verlauf",
		KeyDepositButton:   "💰 Einzahlen",
		KeyWithdrawButton:  "💸 Auszahlen",
		KeyLanguageButton:  "🌍 Sprache",
		KeyBackButton:      "🔙 Zurück",
		KeyReminder:        "🤖 Bereit zu handeln? Tippe auf den Button unten!",
	},
	"ru": {
		KeyWelcomeRegister: "🚀 *Добро пожаловать в TradeX Pro, %s!*\n\nЗарегистрируйтесь и получите *подарок $10* в дополнение к демо-счёту на $10,000.\n\n🎁 Нажмите кнопку ниже!",
		KeyRegisterButton:  "🎁 Получить $10 и зарегистрироваться",
		KeyRegisterSuccess: "🎉 *Регистрация завершена!*\n\n💰 Подарок $10 зачислен — демо-баланс: *$10,010.00*.\n\nГотовы к первой сделке?",
		KeyWelcomeExisting: "👋 *С возвращением, %s!*\n\n💰 Баланс: *$%s*\n📈 Сделок: *%d*\n🏆 Процент побед: *%.1f%%*",
		KeyTradeButton:     "🚀 Торговать",
		KeyStatsButton:     "📊 Моя статистика",
		KeyHistoryButton:   "📜 История",
		KeyDepositButton:   "💰 Пополнить",
		KeyWithdrawButton:  "💸 Вывести",
		KeyLanguageButton:  "🌍 Язык",
		KeyBackButton:      "🔙 Назад",
		KeyHistoryTitle:    "📜 *История сделок*",
		KeyNoTransactions:  "Сделок пока нет — история появится здесь.",
		KeyReminder:        "🤖 Готовы торговать? Нажмите кнопку ниже!",
	},
	"pt": {
		KeyWelcomeRegister: "🚀 *Bem-vindo ao TradeX Pro, %s!*\n\nRegistre-se agora e receba um *presente de $10* além da sua conta demo de $10.000.\n\n🎁 Toque abaixo para resgatar!",
		KeyRegisterButton:  "🎁 Resgatar $10 e registrar",
		KeyTradeButton:     "🚀 Negociar agora",
		KeyStatsButton:     "📊 Minhas estatísticas",
		KeyHistoryButton:   "📜 Histórico",
		KeyDepositButton:   "💰 Depositar",
		KeyWithdrawButton:  "💸 Sacar",
		KeyLanguageButton:  "🌍 Idioma",
		KeyBackButton:      "🔙 Voltar",
	},
	"tr": {
		KeyWelcomeRegister: "🚀 *TradeX Pro'ya hoş geldin, %s!*\n\nŞimdi kaydol ve $10.000 demo hesabına ek olarak *$10 hoş geldin hediyesi* kazan.\n\n🎁 Almak için aşağıya dokun!",
		KeyRegisterButton:  "🎁 $10 Al ve Kaydol",
		KeyTradeButton:     "🚀 Şimdi İşlem Yap",
		KeyStatsButton:     "📊 İstatistiklerim",
		KeyHistoryButton:   "📜 Geçmiş",
		KeyDepositButton:   "💰 Para Yatır",
		KeyWithdrawButton:  "💸 Para Çek",
		KeyLanguageButton:  "🌍 Dil",
		KeyBackButton:      "🔙 Geri",
	},
	"ar": {
		KeyWelcomeRegister: "🚀 *مرحبًا بك في TradeX Pro، %s!*\n\nسجّل الآن واحصل على *هدية ترحيبية بقيمة 10$* إضافةً إلى حساب تجريبي بقيمة 10,000$.\n\n🎁 اضغط بالأسفل للمطالبة بها!",
		KeyRegisterButton:  "🎁 الحصول على 10$ والتسجيل",
		KeyTradeButton:     "🚀 تداول الآن",
		KeyStatsButton:     "📊 إحصائياتي",
		KeyHistoryButton:   "📜 السجل",
		KeyDepositButton:   "💰 إيداع",
		KeyWithdrawButton:  "💸 سحب",
		KeyLanguageButton:  "🌍 اللغة",
		KeyBackButton:      "🔙 رجوع",
	},
	"hi": {
		KeyWelcomeRegister: "🚀 *TradeX Pro में आपका स्वागत है, %s!*\n\nअभी रजिस्टर करें और $10,000 डेमो खाते के साथ *$10 का स्वागत उपहार* पाएं।\n\n🎁 पाने के लिए नीचे टैप करें!",
		KeyRegisterButton:  "🎁 $10 पाएं और रजिस्टर करें",
		KeyTradeButton:     "🚀 अभी ट्रेड करें",
		KeyStatsButton:     "📊 मेरे आँकड़े",
		KeyHistoryButton:   "📜 इतिहास",
		KeyDepositButton:   "💰 जमा",
		KeyWithdrawButton:  "💸 निकासी",
		KeyLanguageButton:  "🌍 भाषा",
		KeyBackButton:      "🔙 वापस",
	},
	"zh": {
		KeyWelcomeRegister: "🚀 *欢迎来到 TradeX Pro，%s！*\n\n立即注册，在 $10,000 模拟账户之外再获得 *$10 欢迎礼金*。\n\n🎁 点击下方领取！",
		KeyRegisterButton:  "🎁 领取 $10 并注册",
		KeyTradeButton:     "🚀 立即交易",
		KeyStatsButton:     "📊 我的统计",
		KeyHistoryButton:   "📜 历史记录",
		KeyDepositButton:   "💰 充值",
		KeyWithdrawButton:  "💸 提现",
		KeyLanguageButton:  "🌍 语言",
		KeyBackButton:      "🔙 返回",
	},
	"ja": {
		KeyWelcomeRegister: "🚀 *TradeX Proへようこそ、%sさん！*\n\n今すぐ登録して、$10,000のデモ口座に加えて*$10のウェルカムギフト*を受け取りましょう。\n\n🎁 下のボタンをタップ！",
		KeyRegisterButton:  "🎁 $10を受け取って登録",
		KeyTradeButton:     "🚀 今すぐ取引",
		KeyStatsButton:     "📊 統計",
		KeyHistoryButton:   "📜 履歴",
		KeyDepositButton:   "💰 入金",
		KeyWithdrawButton:  "💸 出金",
		KeyLanguageButton:  "🌍 言語",
		KeyBackButton:      "🔙 戻る",
	},
}
