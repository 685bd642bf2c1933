package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc", RunMode: "longpoll"},
		MiniApp:  MiniAppConfig{BaseURL: "https://app.example.com/webapp"},
		ProfileAPI: ProfileAPIConfig{
			BaseURL: "http://localhost:8080",
		},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = ""
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeAcceptsPollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeRejectsUnknownRunMode(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "carrier-pigeon"
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeWebhookRequirements(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	assert.Error(t, Normalize(cfg), "webhook mode without url/listen/port")

	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com", Listen: "0.0.0.0", Port: 8443}
	assert.NoError(t, Normalize(cfg))
}

func TestNormalizeMiniAppURL(t *testing.T) {
	cfg := validConfig()
	cfg.MiniApp.BaseURL = ""
	assert.Error(t, Normalize(cfg))

	cfg.MiniApp.BaseURL = "not-a-url"
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeProfileAPIURL(t *testing.T) {
	cfg := validConfig()
	cfg.ProfileAPI.BaseURL = "http://localhost:8080/"
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, "http://localhost:8080", cfg.ProfileAPI.BaseURL)

	cfg = validConfig()
	cfg.ProfileAPI.BaseURL = ""
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{" Callback ", "message"}
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, []string{"callback", "message"}, cfg.RateLimit.ExcludeUpdates)

	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	assert.Error(t, Normalize(cfg))
}

func TestNormalizeServer(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Host: "localhost", Name: "tradex", User: "tradex"},
	}
	require.NoError(t, NormalizeServer(cfg))
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxConnections)

	cfg = &Config{}
	assert.Error(t, NormalizeServer(cfg))
}
