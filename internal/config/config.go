package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
	ResetTTL   string `yaml:"reset_ttl"`
}

type OTPConfig struct {
	Length int    `yaml:"length"`
	TTL    string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

// Config is the immutable process-wide configuration, constructed once at
// startup and injected by reference. Never a mutable global.
type Config struct {
	Port    string
	GinMode string
	DSN     string

	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration

	OTPLength int
	OTPTTL    time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

// Defaults, overridable via config/config.yml and environment variables.
// Environment always wins over the file.
const (
	defaultPort       = "8080"
	defaultDSN        = "host=localhost user=inflate password=inflate dbname=inflate port=5432 sslmode=disable"
	defaultJWTSecret  = "default_secret_key"
	defaultJWTIssuer  = "inflate"
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	defaultResetTTL   = 15 * time.Minute
	defaultOTPLength  = 6
	defaultOTPTTL     = 10 * time.Minute
	defaultSMTPHost   = "smtp.gmail.com"
	defaultSMTPPort   = 587
)

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return n, nil
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return d, nil
}

// Load builds the configuration from an optional config/config.yml overlaid
// with environment variables. A missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       defaultPort,
		GinMode:    "release",
		DSN:        defaultDSN,
		JWTSecret:  defaultJWTSecret,
		JWTIssuer:  defaultJWTIssuer,
		AccessTTL:  defaultAccessTTL,
		RefreshTTL: defaultRefreshTTL,
		ResetTTL:   defaultResetTTL,
		OTPLength:  defaultOTPLength,
		OTPTTL:     defaultOTPTTL,
		SMTPHost:   defaultSMTPHost,
		SMTPPort:   defaultSMTPPort,
	}

	if err := applyConfigFile(cfg, env("CONFIG_FILE", "config/config.yml")); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.OTPLength <= 0 {
		return nil, fmt.Errorf("otp length must be positive, got %d", cfg.OTPLength)
	}
	return cfg, nil
}

func applyConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if file.App.Port != 0 {
		cfg.Port = strconv.Itoa(file.App.Port)
	}
	if file.App.GinMode != "" {
		cfg.GinMode = file.App.GinMode
	}
	if file.Database.DSN != "" {
		cfg.DSN = file.Database.DSN
	}
	if file.JWT.Secret != "" {
		cfg.JWTSecret = file.JWT.Secret
	}
	if file.JWT.Issuer != "" {
		cfg.JWTIssuer = file.JWT.Issuer
	}
	if err := applyFileDuration(&cfg.AccessTTL, file.JWT.AccessTTL, "jwt.access_ttl"); err != nil {
		return err
	}
	if err := applyFileDuration(&cfg.RefreshTTL, file.JWT.RefreshTTL, "jwt.refresh_ttl"); err != nil {
		return err
	}
	if err := applyFileDuration(&cfg.ResetTTL, file.JWT.ResetTTL, "jwt.reset_ttl"); err != nil {
		return err
	}
	if file.OTP.Length != 0 {
		cfg.OTPLength = file.OTP.Length
	}
	if err := applyFileDuration(&cfg.OTPTTL, file.OTP.TTL, "otp.ttl"); err != nil {
		return err
	}
	if file.SMTP.Host != "" {
		cfg.SMTPHost = file.SMTP.Host
	}
	if file.SMTP.Port != 0 {
		cfg.SMTPPort = file.SMTP.Port
	}
	if file.SMTP.User != "" {
		cfg.SMTPUser = file.SMTP.User
	}
	if file.SMTP.Password != "" {
		cfg.SMTPPassword = file.SMTP.Password
	}
	return nil
}

func applyFileDuration(dst *time.Duration, raw, field string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	*dst = d
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = env("PORT", cfg.Port)
	cfg.GinMode = env("GIN_MODE", cfg.GinMode)
	cfg.DSN = env("DATABASE_DSN", cfg.DSN)
	cfg.JWTSecret = env("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = env("JWT_ISSUER", cfg.JWTIssuer)

	var err error
	if cfg.AccessTTL, err = envDuration("ACCESS_TOKEN_TTL", cfg.AccessTTL); err != nil {
		return err
	}
	if cfg.RefreshTTL, err = envDuration("REFRESH_TOKEN_TTL", cfg.RefreshTTL); err != nil {
		return err
	}
	if cfg.ResetTTL, err = envDuration("RESET_TOKEN_TTL", cfg.ResetTTL); err != nil {
		return err
	}
	if cfg.OTPLength, err = envInt("OTP_LENGTH", cfg.OTPLength); err != nil {
		return err
	}
	if cfg.OTPTTL, err = envDuration("OTP_TTL", cfg.OTPTTL); err != nil {
		return err
	}

	cfg.SMTPHost = env("SMTP_HOST", cfg.SMTPHost)
	if cfg.SMTPPort, err = envInt("SMTP_PORT", cfg.SMTPPort); err != nil {
		return err
	}
	cfg.SMTPUser = env("SMTP_USER", cfg.SMTPUser)
	cfg.SMTPPassword = env("SMTP_PASSWORD", cfg.SMTPPassword)
	return nil
}
