package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	cfg := LoadDefault()

	if cfg.Server.Addr != "0.0.0.0:8080" {
		t.Errorf("unexpected default addr %q", cfg.Server.Addr)
	}
	if cfg.Server.Workers != 8 {
		t.Errorf("unexpected default worker count %d", cfg.Server.Workers)
	}
	if cfg.Telemetry.Enabled {
		t.Error("telemetry must be disabled by default")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: "127.0.0.1:9000"
  workers: 2
logging:
  debug: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("expected addr from file, got %q", cfg.Server.Addr)
	}
	if cfg.Server.Workers != 2 {
		t.Errorf("expected workers from file, got %d", cfg.Server.Workers)
	}
	if !cfg.Logging.Debug {
		t.Error("expected debug from file")
	}
	if cfg.Server.Name != "rns" {
		t.Errorf("expected default name to survive the merge, got %q", cfg.Server.Name)
	}
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("expected default max_backups to survive the merge, got %d", cfg.Logging.MaxBackups)
	}
}

func TestLoadEnvOverridesAddr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \"127.0.0.1:9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("RNS_ADDR", "127.0.0.1:9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Errorf("expected env override, got %q", cfg.Server.Addr)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	cfg := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))

	if cfg.Server.Addr != "0.0.0.0:8080" {
		t.Errorf("expected defaults, got addr %q", cfg.Server.Addr)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
