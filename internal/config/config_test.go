package config_test

import (
	"testing"

	"github.com/svpmedia/bulkmail-backend/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DAILY_EMAIL_LIMIT", "")

	cfg := config.Load()

	if cfg.Port != "3001" {
		t.Errorf("expected default port 3001, got %q", cfg.Port)
	}
	if cfg.DailyLimit != 500 {
		t.Errorf("expected default daily limit 500, got %d", cfg.DailyLimit)
	}
}

func TestLoadRespectsZeroDailyLimit(t *testing.T) {
	// Setting the limit to 0 pauses sending; it must not fall back to
	// the default.
	t.Setenv("DAILY_EMAIL_LIMIT", "0")

	cfg := config.Load()
	if cfg.DailyLimit != 0 {
		t.Errorf("expected daily limit 0, got %d", cfg.DailyLimit)
	}
}

func TestLoadIgnoresUnparsableLimit(t *testing.T) {
	t.Setenv("DAILY_EMAIL_LIMIT", "lots")

	cfg := config.Load()
	if cfg.DailyLimit != 500 {
		t.Errorf("expected fallback 500, got %d", cfg.DailyLimit)
	}
}
