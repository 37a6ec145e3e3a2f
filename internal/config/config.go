// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Mail drivers accepted by MAIL_DRIVER.
const (
	MailDriverLog  = "log"
	MailDriverSMTP = "smtp"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat is "json" (default) or "text".
	LogFormat string

	// Env names the deployment, e.g. "dev" or "prod". Defaults to "dev".
	Env string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// APIBaseURL is the public origin of this API, used in email links.
	APIBaseURL string

	// WebBaseURL is the origin of the web app that confirmation links redirect to.
	WebBaseURL string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MigrateOnStart applies pending migrations before serving.
	MigrateOnStart bool

	// NotifyStrict makes trip creation fail (and roll back) when the
	// confirmation email cannot be sent.
	NotifyStrict bool

	Mail Mail
}

// Mail configures outbound email.
type Mail struct {
	// Driver is MailDriverLog (default) or MailDriverSMTP.
	Driver string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	FromName    string
	FromAddress string

	// Timeout bounds a single send. Defaults to 10s.
	Timeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first when present; real
// environment variables always win over it.
// Every missing or malformed variable is reported in one error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config.Load: read .env: %w", err)
	}

	var p parser
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    p.required("DATABASE_URL"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		Env:            getEnv("ENV", "dev"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		APIBaseURL:     strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		WebBaseURL:     strings.TrimRight(getEnv("WEB_BASE_URL", "http://localhost:5173"), "/"),
		MaxBodyBytes:   p.int64("MAX_BODY_BYTES", 1<<20),
		MigrateOnStart: p.bool("MIGRATE_ON_START", false),
		NotifyStrict:   p.bool("NOTIFY_STRICT", false),
		Mail: Mail{
			Driver:       getEnv("MAIL_DRIVER", MailDriverLog),
			SMTPHost:     os.Getenv("SMTP_HOST"),
			SMTPPort:     int(p.int64("SMTP_PORT", 587)),
			SMTPUsername: os.Getenv("SMTP_USERNAME"),
			SMTPPassword: os.Getenv("SMTP_PASSWORD"),
			FromName:     getEnv("MAIL_FROM_NAME", "Equipe plann.er"),
			FromAddress:  getEnv("MAIL_FROM_ADDRESS", "oi@plann.er"),
			Timeout:      p.duration("MAIL_TIMEOUT", 10*time.Second),
		},
	}

	switch cfg.Mail.Driver {
	case MailDriverLog:
	case MailDriverSMTP:
		if cfg.Mail.SMTPHost == "" {
			p.fail("SMTP_HOST: required when MAIL_DRIVER=smtp")
		}
	default:
		p.fail(fmt.Sprintf("MAIL_DRIVER: must be %q or %q, got %q", MailDriverLog, MailDriverSMTP, cfg.Mail.Driver))
	}

	if err := p.err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parser accumulates problems so Load can report all of them at once.
type parser struct {
	missing  []string
	problems []string
}

func (p *parser) fail(msg string) { p.problems = append(p.problems, msg) }

func (p *parser) required(key string) string {
	v := os.Getenv(key)
	if v == "" {
		p.missing = append(p.missing, key)
	}
	return v
}

func (p *parser) int64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		p.fail(fmt.Sprintf("%s: must be a positive integer, got %q", key, v))
		return fallback
	}
	return n
}

func (p *parser) bool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(fmt.Sprintf("%s: must be a boolean, got %q", key, v))
		return fallback
	}
	return b
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.fail(fmt.Sprintf("%s: must be a positive duration like 10s, got %q", key, v))
		return fallback
	}
	return d
}

func (p *parser) err() error {
	var parts []string
	if len(p.missing) > 0 {
		parts = append(parts, "required environment variables not set: "+strings.Join(p.missing, ", "))
	}
	parts = append(parts, p.problems...)
	if len(parts) == 0 {
		return nil
	}
	return errors.New(strings.Join(parts, "; "))
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
