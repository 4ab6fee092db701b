package config

import "testing"

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"development default", Config{Env: "development"}, developmentAPIURL},
		{"development override", Config{Env: "development", APIURL: "http://localhost:9999"}, "http://localhost:9999"},
		{"production is fixed", Config{Env: "production", APIURL: "http://localhost:9999"}, productionAPIURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.BaseURL(); got != tt.want {
				t.Errorf("BaseURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("FINTRACK_SESSION_FILE", "/tmp/fintrack-test/session.json")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Production() {
		t.Error("an empty APP_ENV should not select production")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.WatchSchedule != "@every 15m" {
		t.Errorf("WatchSchedule = %q, want @every 15m", cfg.WatchSchedule)
	}
	if cfg.SessionFile != "/tmp/fintrack-test/session.json" {
		t.Errorf("SessionFile = %q, want the explicit override", cfg.SessionFile)
	}
}

func TestMailConfigured(t *testing.T) {
	c := Config{}
	if c.MailConfigured() {
		t.Error("mail should be unconfigured with no SMTP settings")
	}
	c = Config{SMTPHost: "smtp.example.com", SenderEmail: "me@example.com"}
	if !c.MailConfigured() {
		t.Error("mail should be configured with host and sender set")
	}
}
