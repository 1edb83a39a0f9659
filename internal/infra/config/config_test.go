package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "practicum")
	t.Setenv("TELEGRAM_TOKEN", "telegram")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "practicum", cfg.PracticumToken)
		require.Equal(t, "telegram", cfg.TelegramToken)
		require.Equal(t, "-100123", cfg.TelegramChatID)
		require.Equal(t, 10*time.Minute, cfg.RetryPeriod)
		require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "development", cfg.Environment)
		require.Empty(t, cfg.DatabaseURL)
		require.Empty(t, cfg.PracticumEndpoint)
	})

	t.Run("Overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RETRY_PERIOD", "30s")
		t.Setenv("LOG_LEVEL", "WARN")
		t.Setenv("LOOKBACK", "24h")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 30*time.Second, cfg.RetryPeriod)
		require.Equal(t, "warn", cfg.LogLevel)
		require.Equal(t, 24*time.Hour, cfg.Lookback)
	})

	for _, name := range []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Run("Empty"+name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(name, "")

			cfg, err := Load()
			require.Nil(t, cfg)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			require.ErrorContains(t, err, name)
		})
	}

	t.Run("ChannelUsernameChatID", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TELEGRAM_CHAT_ID", "@homework_channel")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "@homework_channel", cfg.TelegramChatID)
	})

	t.Run("NonPositiveRetryPeriod", func(t *testing.T) {
		setRequired(t)
		t.Setenv("RETRY_PERIOD", "0s")

		_, err := Load()
		require.ErrorContains(t, err, "RETRY_PERIOD")
	})
}
