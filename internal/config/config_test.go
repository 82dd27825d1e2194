package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Fatalf("unexpected address %q", cfg.Server.Address)
	}
	if cfg.Database.MaxConns != 10 {
		t.Fatalf("unexpected max conns %d", cfg.Database.MaxConns)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("default environment must be development")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EMS_SERVER_ADDRESS", ":9999")
	t.Setenv("EMS_ENVIRONMENT", "production")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Address != ":9999" {
		t.Fatalf("env override ignored, got %q", cfg.Server.Address)
	}
	if cfg.IsDevelopment() {
		t.Fatal("environment override ignored")
	}
}
