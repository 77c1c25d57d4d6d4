package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "api.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned an error: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("expected port 4000, but got %d", cfg.Server.Port)
	}
	if cfg.Redis.CacheTTL != 24*time.Hour {
		t.Errorf("expected a 24h cache TTL, but got %s", cfg.Redis.CacheTTL)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Requests != 30 {
		t.Errorf("unexpected rate limit defaults %+v", cfg.RateLimit)
	}
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `
server:
  port: 8080
logging:
  format: json
translations:
  default: kjv
  custom:
    - id: web
      name: World English Bible
      path: s3://bibles/web.txt.zst
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() returned an error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, but got %d", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("expected the default write timeout to survive, but got %s", cfg.Server.WriteTimeout)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json logging, but got %s", cfg.Logging.Format)
	}
	if len(cfg.Translations.Custom) != 1 || cfg.Translations.Custom[0].Path != "s3://bibles/web.txt.zst" {
		t.Errorf("unexpected custom translations %+v", cfg.Translations.Custom)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BIBLE_SERVER_PORT", "9000")
	t.Setenv("BIBLE_TRANSLATION", "asv")
	t.Setenv("BIBLE_RATE_LIMIT", "0")

	cfg, err := Load(writeConfig(t, "server:\n  port: 8080\n"))
	if err != nil {
		t.Fatalf("Load() returned an error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected the environment to win, but got port %d", cfg.Server.Port)
	}
	if cfg.Translations.Default != "asv" {
		t.Errorf("expected default translation asv, but got %q", cfg.Translations.Default)
	}
	if cfg.RateLimit.Enabled {
		t.Error("expected BIBLE_RATE_LIMIT=0 to disable rate limiting")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "server: [",
		"bad port":     "server:\n  port: 70000\n",
		"duplicate id": "translations:\n  custom:\n    - {id: a, path: a.txt}\n    - {id: a, path: b.txt}\n",
		"missing path": "translations:\n  custom:\n    - {id: a}\n",
	}

	for name, body := range tests {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
