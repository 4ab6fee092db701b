// Package config loads application configuration from the environment,
// with an optional .env file for development.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Backend base URLs selected by the environment flag. Production
// deliberately has no runtime override surface.
const (
	productionAPIURL  = "https://expense-tracker-backend-delta-seven.vercel.app"
	developmentAPIURL = "http://localhost:3004"
)

// Config holds application configuration.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	APIURL      string `env:"FINTRACK_API_URL"`
	SessionFile string `env:"FINTRACK_SESSION_FILE"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// fintrack watch re-renders the monthly sheet on this cron spec.
	WatchSchedule string `env:"FINTRACK_WATCH_SCHEDULE" envDefault:"@every 15m"`

	// SMTP settings for mailing the monthly sheet.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SenderEmail  string `env:"SENDER_EMAIL"`
}

// NewConfig loads configuration from the environment.
func NewConfig() (*Config, error) {
	// A missing .env file is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot locate home directory for session file: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".fintrack", "session.json")
	}
	return cfg, nil
}

// Production reports whether the production backend is targeted.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// BaseURL resolves the backend base URL. In production the URL is fixed
// at build configuration; in development FINTRACK_API_URL may point at
// a local backend.
func (c *Config) BaseURL() string {
	if c.Production() {
		return productionAPIURL
	}
	if c.APIURL != "" {
		return c.APIURL
	}
	return developmentAPIURL
}

// MailConfigured reports whether the SMTP settings allow sending.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}
