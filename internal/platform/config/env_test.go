package config

import "testing"

type testEnv struct {
	Addr   string `env:"TFC_TEST_ADDR"`
	DBPath string `env:"TFC_TEST_DB_PATH" envDefault:"tfc.db"`
}

func TestParseEnvReadsValues(t *testing.T) {
	t.Setenv("TFC_TEST_ADDR", "localhost:9090")

	var cfg testEnv
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:9090" {
		t.Fatalf("expected addr from env, got %q", cfg.Addr)
	}
	if cfg.DBPath != "tfc.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestParseEnvRejectsNonStruct(t *testing.T) {
	var target int
	if err := ParseEnv(&target); err == nil {
		t.Fatal("expected error for non-struct target")
	}
}
