package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Site.DefaultLanguage != "en" {
		t.Errorf("expected default language en, got %s", cfg.Site.DefaultLanguage)
	}
	if len(cfg.Site.Languages) != len(defaultLanguages) {
		t.Errorf("expected default languages, got %v", cfg.Site.Languages)
	}
	if cfg.Build.Workers != defaultWorkers {
		t.Errorf("unexpected default workers: %d", cfg.Build.Workers)
	}
	if cfg.Dev {
		t.Errorf("dev mode should default to false")
	}
	if cfg.Site.CacheTTL != defaultCacheTTL {
		t.Errorf("unexpected cache ttl: %s", cfg.Site.CacheTTL)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"SITE_ADDR":          ":9090",
		"SITE_READ_TIMEOUT":  "20s",
		"SITE_URL":           "https://ethereum.org/",
		"SITE_LANGUAGES":     "en, ar ,EN",
		"SITE_DEFAULT_LANG":  "ar",
		"SITE_BUILD_WORKERS": "8",
		"SITE_DEV":           "true",
		"SITE_THEME_VARIANT": "dark",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr override not applied: %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("read timeout override not applied: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Site.URL != "https://ethereum.org" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.URL)
	}
	if got := cfg.Site.Languages; len(got) != 2 || got[0] != "en" || got[1] != "ar" {
		t.Errorf("unexpected languages: %v", got)
	}
	if cfg.Site.DefaultLanguage != "ar" {
		t.Errorf("default language override not applied: %s", cfg.Site.DefaultLanguage)
	}
	if cfg.Build.Workers != 8 {
		t.Errorf("workers override not applied: %d", cfg.Build.Workers)
	}
	if !cfg.Dev {
		t.Errorf("expected dev mode enabled")
	}
	if cfg.Site.ThemeVariant != "dark" {
		t.Errorf("theme variant override not applied: %s", cfg.Site.ThemeVariant)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	env := map[string]string{
		"SITE_READ_TIMEOUT":  "soon",
		"SITE_BUILD_WORKERS": "-1",
		"SITE_DEFAULT_LANG":  "xx",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := verr.Fields()
	want := []string{"SITE_READ_TIMEOUT", "SITE_BUILD_WORKERS", "SITE_DEFAULT_LANG"}
	if len(fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d: want %s, got %s", i, want[i], fields[i])
		}
	}
}

func TestLoadReadsDotEnvWithLowerPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SITE_TITLE=from-dotenv\nSITE_OUT_DIR=dist\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(
		WithEnvFile(path),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{"SITE_OUT_DIR": "build"}),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Title != "from-dotenv" {
		t.Errorf("expected title from .env, got %s", cfg.Site.Title)
	}
	if cfg.Build.OutDir != "build" {
		t.Errorf("explicit env map must win over .env, got %s", cfg.Build.OutDir)
	}
}

func TestLoadIgnoresMissingDotEnv(t *testing.T) {
	_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "missing.env")), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("missing .env must not fail: %v", err)
	}
}
