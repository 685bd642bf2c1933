// Package i18n resolves user-facing text keys into localized strings.
//
// The default language table is total over every key the screens use; all
// other tables are partial and fall back to the default language on a miss.
package i18n

import (
	"fmt"
	"log/slog"

	"tradex-bot/core/logger"
)

// DefaultLanguage is the fallback language for every resolution miss and the
// language every new session starts with.
const DefaultLanguage = "en"

// Language describes one selectable language for the picker.
type Language struct {
	Code string
	Flag string
	Name string
}

// Resolver maps (language code, text key) to localized strings.
type Resolver struct {
	tables    map[string]map[string]string
	languages []Language
}

// NewResolver builds a Resolver over the built-in catalog.
func NewResolver() *Resolver {
	return &Resolver{
		tables:    catalog,
		languages: languages,
	}
}

// Languages returns picker metadata in catalog order.
func (r *Resolver) Languages() []Language {
	out := make([]Language, len(r.languages))
	copy(out, r.languages)
	return out
}

// Supported reports whether code identifies a known language.
func (r *Resolver) Supported(code string) bool {
	_, ok := r.tables[code]
	return ok
}

// Resolve returns the localized template for key in the given language,
// applying positional argument substitution when args are provided.
// A miss in a non-default table falls back to the default language; a miss
// in the default table is logged and resolves to the key itself, never to an
// empty string.
func (r *Resolver) Resolve(lang, key string, args ...any) string {
	text, ok := r.lookup(lang, key)
	if !ok {
		logger.Warn(logger.Background(), "i18n", "key.missing",
			slog.String("lang", lang),
			slog.String("key", key),
		)
		text = key
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

func (r *Resolver) lookup(lang, key string) (string, bool) {
	if table, ok := r.tables[lang]; ok {
		if text, ok := table[key]; ok {
			return text, true
		}
	}
	if lang != DefaultLanguage {
		if text, ok := r.tables[DefaultLanguage][key]; ok {
			return text, true
		}
	}
	return "", false
}

// Validate checks that the default language table covers every required key.
// A failure here is a programming error and must abort startup.
func (r *Resolver) Validate(required []string) error {
	table, ok := r.tables[DefaultLanguage]
	if !ok {
		return fmt.Errorf("i18n: default language %q has no table", DefaultLanguage)
	}
	var missing []string
	for _, key := range required {
		if _, ok := table[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("i18n: default table is missing keys %v", missing)
	}
	return nil
}
