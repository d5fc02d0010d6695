package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.JWTSecret != "default_secret_key" {
		t.Errorf("unexpected default secret %q", cfg.JWTSecret)
	}
	if cfg.AccessTTL != 15*time.Minute {
		t.Errorf("expected access TTL 15m, got %v", cfg.AccessTTL)
	}
	if cfg.RefreshTTL != 7*24*time.Hour {
		t.Errorf("expected refresh TTL 168h, got %v", cfg.RefreshTTL)
	}
	if cfg.ResetTTL != 15*time.Minute {
		t.Errorf("expected reset TTL 15m, got %v", cfg.ResetTTL)
	}
	if cfg.OTPLength != 6 {
		t.Errorf("expected OTP length 6, got %d", cfg.OTPLength)
	}
	if cfg.SMTPHost != "smtp.gmail.com" || cfg.SMTPPort != 587 {
		t.Errorf("unexpected SMTP defaults %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yml"))
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("OTP_LENGTH", "8")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("expected overridden secret, got %q", cfg.JWTSecret)
	}
	if cfg.AccessTTL != 30*time.Minute {
		t.Errorf("expected access TTL 30m, got %v", cfg.AccessTTL)
	}
	if cfg.OTPLength != 8 {
		t.Errorf("expected OTP length 8, got %d", cfg.OTPLength)
	}
	if cfg.SMTPPort != 2525 {
		t.Errorf("expected SMTP port 2525, got %d", cfg.SMTPPort)
	}
}

func TestLoad_ConfigFileAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	file := `
app:
  port: 7000
jwt:
  secret: from-file
  access_ttl: 20m
otp:
  length: 4
  ttl: 5m
smtp:
  host: mail.internal
`
	if err := os.WriteFile(path, []byte(file), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "7000" {
		t.Errorf("expected file port 7000, got %s", cfg.Port)
	}
	// Environment wins over the file.
	if cfg.JWTSecret != "from-env" {
		t.Errorf("expected env secret to win, got %q", cfg.JWTSecret)
	}
	if cfg.AccessTTL != 20*time.Minute {
		t.Errorf("expected access TTL 20m, got %v", cfg.AccessTTL)
	}
	if cfg.OTPLength != 4 {
		t.Errorf("expected OTP length 4, got %d", cfg.OTPLength)
	}
	if cfg.OTPTTL != 5*time.Minute {
		t.Errorf("expected OTP TTL 5m, got %v", cfg.OTPTTL)
	}
	if cfg.SMTPHost != "mail.internal" {
		t.Errorf("expected SMTP host mail.internal, got %s", cfg.SMTPHost)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad duration", key: "ACCESS_TOKEN_TTL", value: "fifteen"},
		{name: "bad int", key: "OTP_LENGTH", value: "six"},
		{name: "bad smtp port", key: "SMTP_PORT", value: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yml"))
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
