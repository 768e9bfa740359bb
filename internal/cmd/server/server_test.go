package server

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("TFC_TOKEN_SECRET", "env-secret")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "localhost:8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.DBPath != "tracker.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.FallbackPath != "tracker.json" {
		t.Fatalf("expected default fallback path, got %q", cfg.FallbackPath)
	}
	if cfg.TokenSecret != "env-secret" {
		t.Fatalf("expected env token secret, got %q", cfg.TokenSecret)
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	t.Setenv("TFC_DB_PATH", "env.db")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	args := []string{
		"-addr", "0.0.0.0:9090",
		"-db-path", "flag.db",
		"-token-secret", "flag-secret",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "0.0.0.0:9090" {
		t.Fatalf("expected flag addr, got %q", cfg.Addr)
	}
	if cfg.DBPath != "flag.db" {
		t.Fatalf("expected flag db path over env, got %q", cfg.DBPath)
	}
	if cfg.TokenSecret != "flag-secret" {
		t.Fatalf("expected flag token secret, got %q", cfg.TokenSecret)
	}
}

func TestParseConfigRequiresTokenSecret(t *testing.T) {
	t.Setenv("TFC_TOKEN_SECRET", "")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error when no token secret is provided")
	}
}
