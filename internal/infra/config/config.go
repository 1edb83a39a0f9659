package config

import (
	"errors"
	"fmt"
	"strings" // For LogLevel normalization
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string        `env:"PRACTICUM_TOKEN,required,notEmpty"`
	TelegramToken     string        `env:"TELEGRAM_TOKEN,required,notEmpty"`
	TelegramChatID    string        `env:"TELEGRAM_CHAT_ID,required,notEmpty"` // numeric id or @channel username
	PracticumEndpoint string        `env:"PRACTICUM_ENDPOINT"` // Empty selects practicum.DefaultEndpoint
	RetryPeriod       time.Duration `env:"RETRY_PERIOD" envDefault:"10m"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	Lookback          time.Duration `env:"LOOKBACK" envDefault:"0s"`
	NotifyRate        float64       `env:"NOTIFY_RATE" envDefault:"1"` // Telegram messages per second
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"debug"`
	LogFile           string        `env:"LOG_FILE"`
	Environment       string        `env:"ENVIRONMENT" envDefault:"development"`
	DatabaseURL       string        `env:"DATABASE_URL"` // Optional: enables the notification journal
}

// ConfigError means the process cannot start. It is never recovered from.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "invalid configuration: " + e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, &ConfigError{Err: err}
	}

	if cfg.RetryPeriod <= 0 {
		return nil, &ConfigError{Err: fmt.Errorf("RETRY_PERIOD must be positive, got %s", cfg.RetryPeriod)}
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, &ConfigError{Err: fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", cfg.HTTPTimeout)}
	}
	if cfg.Lookback < 0 {
		return nil, &ConfigError{Err: errors.New("LOOKBACK must not be negative")}
	}
	if cfg.NotifyRate <= 0 {
		return nil, &ConfigError{Err: fmt.Errorf("NOTIFY_RATE must be positive, got %v", cfg.NotifyRate)}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)

	return cfg, nil
}
