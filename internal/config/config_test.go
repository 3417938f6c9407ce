package config

import (
	"testing"

	"github.com/ilyakaznacheev/cleanenv"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		t.Fatalf("ReadEnv failed: %v", err)
	}

	if cfg.HTTPServer.Address != ":3000" {
		t.Errorf("address = %q, want %q", cfg.HTTPServer.Address, ":3000")
	}
	if cfg.Storage.Root != "/data/nft" {
		t.Errorf("root = %q, want %q", cfg.Storage.Root, "/data/nft")
	}
	if cfg.Storage.MaxUploadBytes != 838860800 {
		t.Errorf("max_upload_bytes = %d, want 800MB", cfg.Storage.MaxUploadBytes)
	}
	if cfg.CORS.AllowedOrigins != "*" {
		t.Errorf("allowed_origins = %q, want %q", cfg.CORS.AllowedOrigins, "*")
	}
	if cfg.Storage.FileOwner != "" {
		t.Errorf("file_owner should default to empty, got %q", cfg.Storage.FileOwner)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_ROOT", "/tmp/media")
	t.Setenv("HTTP_ADDRESS", ":8081")
	t.Setenv("FILE_OWNER", "caddy:caddy")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		t.Fatalf("ReadEnv failed: %v", err)
	}

	if cfg.Storage.Root != "/tmp/media" {
		t.Errorf("root = %q, want %q", cfg.Storage.Root, "/tmp/media")
	}
	if cfg.HTTPServer.Address != ":8081" {
		t.Errorf("address = %q, want %q", cfg.HTTPServer.Address, ":8081")
	}
	if cfg.Storage.FileOwner != "caddy:caddy" {
		t.Errorf("file_owner = %q, want %q", cfg.Storage.FileOwner, "caddy:caddy")
	}
}
