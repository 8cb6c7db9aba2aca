package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "STORE_DRIVER", "DUE_POLL_INTERVAL", "DUE_CATCH_UP_WINDOW",
		"BOOKING_PAST_TOLERANCE", "DEFAULT_SNOOZE", "BACKUP_S3_BUCKET", "STAFF_PASSWORD_HASH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), ":8080")
	}
	if cfg.StoreDriver != "postgres" {
		t.Errorf("StoreDriver = %q, want postgres", cfg.StoreDriver)
	}
	if cfg.DuePollInterval != 5*time.Second {
		t.Errorf("DuePollInterval = %v, want 5s", cfg.DuePollInterval)
	}
	if cfg.DueCatchUpWindow != 24*time.Hour {
		t.Errorf("DueCatchUpWindow = %v, want 24h", cfg.DueCatchUpWindow)
	}
	if cfg.BookingPastTolerance != time.Minute {
		t.Errorf("BookingPastTolerance = %v, want 1m", cfg.BookingPastTolerance)
	}
	if cfg.DefaultSnooze != 10*time.Minute {
		t.Errorf("DefaultSnooze = %v, want 10m", cfg.DefaultSnooze)
	}
	if cfg.Backup.Enabled() {
		t.Error("Backup.Enabled() = true without a bucket")
	}
	if cfg.AuthEnabled() {
		t.Error("AuthEnabled() = true without a password hash")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("DUE_CATCH_UP_WINDOW", "12h")
	t.Setenv("DUE_POLL_INTERVAL", "not-a-duration")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://salon.example.com ,")

	cfg := Load()

	if cfg.StoreDriver != "redis" {
		t.Errorf("StoreDriver = %q, want redis", cfg.StoreDriver)
	}
	if cfg.DueCatchUpWindow != 12*time.Hour {
		t.Errorf("DueCatchUpWindow = %v, want 12h", cfg.DueCatchUpWindow)
	}
	if cfg.DuePollInterval != 5*time.Second {
		t.Errorf("DuePollInterval = %v, want default 5s on parse error", cfg.DuePollInterval)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", cfg.RedisDB)
	}
	want := []string{"http://localhost:3000", "https://salon.example.com"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}
