package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "DATABASE_DRIVER", "DATABASE_DSN", "DATABASE_QUERY_TIMEOUT", "SITE_ABOUT_NAME", "TRUSTED_PROXIES"} {
		t.Setenv(key, "")
	}

	cfg, err := load(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.DatabaseDriver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %q", cfg.DatabaseDriver)
	}
	if cfg.DatabaseDSN != "blog.db" {
		t.Fatalf("expected default dsn, got %q", cfg.DatabaseDSN)
	}
	if cfg.QueryTimeout != 5*time.Second {
		t.Fatalf("expected 5s query timeout, got %s", cfg.QueryTimeout)
	}
	if cfg.AboutName != "Bohdan" {
		t.Fatalf("expected default about name, got %q", cfg.AboutName)
	}
	if len(cfg.TrustedProxies) != 2 {
		t.Fatalf("expected two default trusted proxies, got %v", cfg.TrustedProxies)
	}
}

func TestLoadReadsDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("database:\n  driver: postgres\n  dsn: host=db dbname=blog\n  username: blog\n  password: secret\n  query_timeout: 2s\n")
	if err := os.WriteFile(filepath.Join(dir, "database.yaml"), content, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := load(viper.New(), dir)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.DatabaseDriver != "postgres" {
		t.Fatalf("expected postgres driver, got %q", cfg.DatabaseDriver)
	}
	if cfg.DatabaseDSN != "host=db dbname=blog" {
		t.Fatalf("unexpected dsn %q", cfg.DatabaseDSN)
	}
	if cfg.DatabaseUser != "blog" || cfg.DatabasePassword != "secret" {
		t.Fatalf("unexpected credentials %q/%q", cfg.DatabaseUser, cfg.DatabasePassword)
	}
	if cfg.QueryTimeout != 2*time.Second {
		t.Fatalf("expected 2s query timeout, got %s", cfg.QueryTimeout)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: \"9000\"\nsite:\n  about_name: File\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("PORT", "9100")
	t.Setenv("SITE_ABOUT_NAME", "Env")

	cfg, err := load(viper.New(), dir)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}

	if cfg.ListenAddr != ":9100" {
		t.Fatalf("expected env port to win, got %q", cfg.ListenAddr)
	}
	if cfg.AboutName != "Env" {
		t.Fatalf("expected env about name, got %q", cfg.AboutName)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "database.yaml"), []byte("database: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := load(viper.New(), dir); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadFallsBackOnInvalidTimeout(t *testing.T) {
	t.Setenv("DATABASE_QUERY_TIMEOUT", "-1s")

	cfg, err := load(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.QueryTimeout != defaultQueryTimeout {
		t.Fatalf("expected fallback timeout, got %s", cfg.QueryTimeout)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" 10.0.0.0/8, ,127.0.0.1 ")
	if len(got) != 2 || got[0] != "10.0.0.0/8" || got[1] != "127.0.0.1" {
		t.Fatalf("unexpected split result %v", got)
	}
}
