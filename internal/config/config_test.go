package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "5000")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.Upload.Dir != "uploads" {
		t.Errorf("Upload.Dir = %q, want %q", cfg.Upload.Dir, "uploads")
	}
	if cfg.Upload.MaxSizeBytes != 16*1024*1024 {
		t.Errorf("Upload.MaxSizeBytes = %d, want %d", cfg.Upload.MaxSizeBytes, 16*1024*1024)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want %v", cfg.Auth.TokenTTL, 24*time.Hour)
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("DB_PORT", "54320")
	os.Setenv("UPLOAD_DIR", "/var/lib/qrmaster/uploads")
	os.Setenv("TOKEN_TTL", "45m")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DB_PORT")
		os.Unsetenv("UPLOAD_DIR")
		os.Unsetenv("TOKEN_TTL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Database.Port != 54320 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 54320)
	}
	if cfg.Upload.Dir != "/var/lib/qrmaster/uploads" {
		t.Errorf("Upload.Dir = %q, want %q", cfg.Upload.Dir, "/var/lib/qrmaster/uploads")
	}
	if cfg.Auth.TokenTTL != 45*time.Minute {
		t.Errorf("Auth.TokenTTL = %v, want %v", cfg.Auth.TokenTTL, 45*time.Minute)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	os.Setenv("DB_PORT", "not-a-number")
	defer os.Unsetenv("DB_PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want fallback %d", cfg.Database.Port, 5432)
	}
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "qr",
		Password: "pw",
		DBName:   "qrdb",
		SSLMode:  "require",
	}

	want := "host=db.local port=5433 user=qr password=pw dbname=qrdb sslmode=require"
	if got := d.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
