package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing config file, got %v", err)
	}
	if cfg.Daemon.SocketPath != defaultSocketPath {
		t.Errorf("expected default socket path, got %q", cfg.Daemon.SocketPath)
	}
	if cfg.Daemon.CacheSize != defaultCacheSize {
		t.Errorf("expected default cache size, got %d", cfg.Daemon.CacheSize)
	}
	if cfg.Voice.Enabled {
		t.Errorf("expected voice disabled by default")
	}
}

func TestLoadPartialDocumentBackfillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	doc := `
[daemon]
socket_path = "/tmp/custom.sock"

[providers.chat]
api_key = "sk-test"
model = "claude-test"
endpoint = "https://example.invalid/v1/messages"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Daemon.SocketPath != "/tmp/custom.sock" {
		t.Errorf("expected explicit socket path to survive, got %q", cfg.Daemon.SocketPath)
	}
	if cfg.Daemon.CacheSize != defaultCacheSize {
		t.Errorf("expected cache_size default to backfill, got %d", cfg.Daemon.CacheSize)
	}

	p, ok := cfg.Providers["chat"]
	if !ok {
		t.Fatalf("expected chat provider section to be present")
	}
	if !p.IsEnabled() {
		t.Errorf("expected enabled to default true when omitted")
	}
	if p.TimeoutMs != DefaultProviderTimeoutMs {
		t.Errorf("expected default timeout_ms, got %d", p.TimeoutMs)
	}
}

func TestProviderExplicitlyDisabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	doc := `
[providers.local]
endpoint = "http://localhost:11434/v1"
enabled = false
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Providers["local"].IsEnabled() {
		t.Errorf("expected explicit enabled=false to be respected")
	}
}
