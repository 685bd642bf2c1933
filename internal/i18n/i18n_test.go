package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultTableIsComplete(t *testing.T) {
	r := NewResolver()
	require.NoError(t, r.Validate(RequiredKeys()))
}

func TestValidateReportsMissingKeys(t *testing.T) {
	r := NewResolver()
	err := r.Validate(append(RequiredKeys(), "definitely_not_a_key"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely_not_a_key")
}

func TestResolvePositionalArgs(t *testing.T) {
	r := NewResolver()
	text := r.Resolve("en", KeyWelcomeRegister, "Alice")
	assert.Contains(t, text, "Alice")
	assert.NotContains(t, text, "%s")
}

func TestResolveFallsBackToDefaultLanguage(t *testing.T) {
	r := NewResolver()
	// zh has no stats_text entry; the English template must be used.
	text := r.Resolve("zh", KeyStatsText, "Bob", "10010.00", 0, 0.0, "10.00")
	assert.Contains(t, text, "Bob")
	assert.Contains(t, text, "My Statistics")
}

func TestResolveUnknownLanguageUsesDefault(t *testing.T) {
	r := NewResolver()
	want := r.Resolve("en", KeyTradeButton)
	assert.Equal(t, want, r.Resolve("xx", KeyTradeButton))
}

func TestResolveUnknownKeyNeverEmpty(t *testing.T) {
	r := NewResolver()
	got := r.Resolve("en", "no_such_key")
	assert.NotEmpty(t, got)
}

func TestEveryTableIsSubsetOfRequiredKeys(t *testing.T) {
	r := NewResolver()
	required := map[string]struct{}{}
	for _, k := range RequiredKeys() {
		required[k] = struct{}{}
	}
	for _, lang := range r.Languages() {
		for key := range catalog[lang.Code] {
			_, ok := required[key]
			assert.Truef(t, ok, "language %s carries stray key %s", lang.Code, key)
		}
	}
}

func TestSupported(t *testing.T) {
	r := NewResolver()
	for _, lang := range r.Languages() {
		assert.True(t, r.Supported(lang.Code))
	}
	assert.False(t, r.Supported("xx"))
	assert.False(t, r.Supported(strings.ToUpper(DefaultLanguage)))
}
