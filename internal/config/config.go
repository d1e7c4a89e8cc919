// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process configuration, read from the environment after
// godotenv has loaded .env in main.
type Config struct {
	Port         string
	Environment  string
	ResendAPIKey string
	EmailFrom    string
	EmailTo      string
	DailyLimit   int
	SendTimeout  time.Duration
	LogoPath     string

	// optional integrations
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	AMQPURL    string
}

// Load reads configuration from the environment with sensible defaults.
func Load() Config {
	return Config{
		Port:         getenv("PORT", "3001"),
		Environment:  getenv("APP_ENV", "development"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    os.Getenv("EMAIL_FROM"),
		EmailTo:      getenv("EMAIL_TO", os.Getenv("EMAIL_FROM")),
		DailyLimit:   getint("DAILY_EMAIL_LIMIT", 500),
		SendTimeout:  time.Duration(getint("SEND_TIMEOUT_SECONDS", 30)) * time.Second,
		LogoPath:     getenv("LOGO_PATH", "public/logo.png"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		AMQPURL:    os.Getenv("AMQP_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		// 0 is a valid setting (e.g. DAILY_EMAIL_LIMIT=0 pauses sending)
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}
