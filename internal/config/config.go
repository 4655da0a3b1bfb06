package config

import (
	"fmt"
	"os"
)

// Store backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Port           string
	StoreBackend   string
	DealsFile      string
	DBConn         string
	LogLevel       string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
	LandlordEmail  string
	DigestSchedule string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		StoreBackend:   getEnv("STORE_BACKEND", BackendFile),
		DealsFile:      getEnv("DEALS_FILE", "data/deals.json"),
		DBConn:         getEnv("DB_CONN", "host=localhost port=5432 user=equilease password=equilease dbname=equilease sslmode=disable"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "deals@equilease.local"),
		LandlordEmail:  getEnv("LANDLORD_EMAIL", ""),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", "0 8 * * *"),
	}

	if cfg.StoreBackend != BackendFile && cfg.StoreBackend != BackendPostgres {
		return nil, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendFile, BackendPostgres, cfg.StoreBackend)
	}
	if cfg.StoreBackend == BackendFile && cfg.DealsFile == "" {
		return nil, fmt.Errorf("DEALS_FILE is required for the file backend")
	}
	if cfg.StoreBackend == BackendPostgres && cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required for the postgres backend")
	}

	return cfg, nil
}

// EmailEnabled reports whether the SMTP transport is configured.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
