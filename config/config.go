package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string // Only origin allowed by CORS
	ReleaseMode bool
	// SMTP Configuration (Gmail app password)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string // Operator mailbox: sender, recipient and login
	SMTPPassword string
}

var (
	ErrMissingMailbox  = errors.New("GMAIL_USER is required")
	ErrMissingPassword = errors.New("GMAIL_APP_PASSWORD is required")
	ErrInvalidFrontend = errors.New("FRONTEND_URL must be an http(s) origin")
)

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "3001"),
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		ReleaseMode:  os.Getenv("GIN_MODE") == "release",
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("GMAIL_USER", ""),
		SMTPPassword: getEnv("GMAIL_APP_PASSWORD", ""),
	}

	if cfg.SMTPUsername == "" {
		return nil, ErrMissingMailbox
	}
	if cfg.SMTPPassword == "" {
		return nil, ErrMissingPassword
	}
	if err := validateOrigin(cfg.FrontendURL); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateOrigin rejects values the CORS middleware would panic on.
func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFrontend, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: got %q", ErrInvalidFrontend, origin)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
