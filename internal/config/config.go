// Package config loads the daemon's TOML configuration document and
// supplies defaults for anything missing, per spec.md §6. A missing
// config file is not an error — it simply yields a fully-defaulted
// Config, matching the teacher's settings loader posture of never
// failing on an absent or partial file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the root TOML document shape from spec.md §6.
type Config struct {
	Daemon    DaemonConfig              `toml:"daemon"`
	Providers map[string]ProviderConfig `toml:"providers"`
	Voice     VoiceConfig               `toml:"voice"`
	Context   ContextConfig             `toml:"context"`
}

// DaemonConfig is the [daemon] section.
type DaemonConfig struct {
	SocketPath string `toml:"socket_path"`
	CacheSize  int    `toml:"cache_size"`
	LogLevel   string `toml:"log_level"`
}

// ProviderConfig is one [providers.<name>] section. Enabled is a pointer
// so IsEnabled can tell "omitted" (defaults true) apart from an
// explicit "enabled = false".
type ProviderConfig struct {
	APIKey    string `toml:"api_key"`
	Model     string `toml:"model"`
	Endpoint  string `toml:"endpoint"`
	Enabled   *bool  `toml:"enabled"`
	TimeoutMs int    `toml:"timeout_ms"`
}

// IsEnabled reports whether the provider is enabled, defaulting to true
// when unset.
func (p ProviderConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// VoiceConfig is the [voice] section.
type VoiceConfig struct {
	Enabled             bool    `toml:"enabled"`
	Engine              string  `toml:"engine"`
	Language            string  `toml:"language"`
	ConfidenceThreshold float64 `toml:"confidence_threshold"`
	CaptureTimeoutMs    int     `toml:"capture_timeout_ms"`
	DeepgramAPIKey      string  `toml:"deepgram_api_key"`
}

// ContextConfig is the [context] section.
type ContextConfig struct {
	HistoryLines     int  `toml:"history_lines"`
	GitEnabled       bool `toml:"git_enabled"`
	ProjectDetection bool `toml:"project_detection"`
}

const (
	defaultSocketPath = "/tmp/murmur.sock"
	defaultPIDPath    = "/tmp/murmur.pid"
	defaultCacheSize  = 1000
	defaultLogLevel   = "info"

	defaultVoiceEngine              = "deepgram"
	defaultVoiceLanguage            = "en"
	defaultVoiceConfidenceThreshold = 0.5
	defaultVoiceCaptureTimeoutMs    = 30000

	defaultHistoryLines = 500

	// DefaultProviderTimeoutMs is the per-attempt provider timeout from
	// spec.md §5 when a provider section omits timeout_ms.
	DefaultProviderTimeoutMs = 5000
)

// PIDPath is the fixed PID file location from spec.md §6. It is not
// user-configurable.
func PIDPath() string { return defaultPIDPath }

// DefaultPath resolves the config file location: ${XDG_CONFIG_HOME or
// ~/.config}/murmur/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "murmur", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "murmur", "config.toml")
	}
	return filepath.Join(home, ".config", "murmur", "config.toml")
}

// Load reads and decodes the TOML document at path, applying defaults
// for every unset field. A missing file yields Defaults().
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// Defaults returns a Config with every field at its spec.md §6 default.
func Defaults() Config {
	cfg := Config{
		Daemon: DaemonConfig{
			SocketPath: defaultSocketPath,
			CacheSize:  defaultCacheSize,
			LogLevel:   defaultLogLevel,
		},
		Providers: map[string]ProviderConfig{},
		Voice: VoiceConfig{
			Enabled:             false,
			Engine:              defaultVoiceEngine,
			Language:            defaultVoiceLanguage,
			ConfidenceThreshold: defaultVoiceConfidenceThreshold,
			CaptureTimeoutMs:    defaultVoiceCaptureTimeoutMs,
		},
		Context: ContextConfig{
			HistoryLines:     defaultHistoryLines,
			GitEnabled:       true,
			ProjectDetection: true,
		},
	}
	return cfg
}

// applyDefaults fills in zero-valued fields after a partial TOML decode,
// the same posture as the teacher's settings loader: never error on a
// partial document, just backfill.
func applyDefaults(cfg *Config) {
	if cfg.Daemon.SocketPath == "" {
		cfg.Daemon.SocketPath = defaultSocketPath
	}
	if cfg.Daemon.CacheSize <= 0 {
		cfg.Daemon.CacheSize = defaultCacheSize
	}
	if cfg.Daemon.LogLevel == "" {
		cfg.Daemon.LogLevel = defaultLogLevel
	}
	if cfg.Providers == nil {
		cfg.Providers = map[string]ProviderConfig{}
	}
	for name, p := range cfg.Providers {
		if p.TimeoutMs <= 0 {
			p.TimeoutMs = DefaultProviderTimeoutMs
		}
		cfg.Providers[name] = p
	}
	if cfg.Voice.Engine == "" {
		cfg.Voice.Engine = defaultVoiceEngine
	}
	if cfg.Voice.Language == "" {
		cfg.Voice.Language = defaultVoiceLanguage
	}
	if cfg.Voice.ConfidenceThreshold <= 0 {
		cfg.Voice.ConfidenceThreshold = defaultVoiceConfidenceThreshold
	}
	if cfg.Voice.CaptureTimeoutMs <= 0 {
		cfg.Voice.CaptureTimeoutMs = defaultVoiceCaptureTimeoutMs
	}
	if cfg.Context.HistoryLines <= 0 {
		cfg.Context.HistoryLines = defaultHistoryLines
	}
}
