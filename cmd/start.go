package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"murmur/internal/cache"
	"murmur/internal/config"
	"murmur/internal/contextcollector"
	"murmur/internal/handler"
	"murmur/internal/history"
	"murmur/internal/provider"
	"murmur/internal/server"
	"murmur/internal/voice"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the daemon in the foreground",
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if socketPath != "" {
		cfg.Daemon.SocketPath = socketPath
	}
	if logLevel != "" {
		cfg.Daemon.LogLevel = logLevel
	}

	log.Printf("[daemon] starting, socket=%s log_level=%s", cfg.Daemon.SocketPath, cfg.Daemon.LogLevel)

	h := &handler.Handler{
		Cache:     cache.New(cfg.Daemon.CacheSize),
		History:   history.New(cfg.Context.HistoryLines),
		Collector: contextcollector.New(cfg.Context),
		Registry:  buildRegistry(cfg),
		Voice:     buildVoiceEngine(cfg),
	}

	srv := server.New(cfg.Daemon.SocketPath, config.PIDPath(), h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

// buildRegistry constructs a provider for each enabled [providers.<name>]
// section, per spec.md §4.5's three concrete provider kinds.
func buildRegistry(cfg config.Config) *provider.Registry {
	providers := make(map[string]provider.Provider, 3)

	if p, ok := cfg.Providers[provider.NameChat]; ok && p.IsEnabled() {
		providers[provider.NameChat] = provider.NewChatProvider(provider.ChatConfig{
			APIKey:   p.APIKey,
			Model:    p.Model,
			Endpoint: p.Endpoint,
			Timeout:  time.Duration(p.TimeoutMs) * time.Millisecond,
		})
	}
	if p, ok := cfg.Providers[provider.NameFIM]; ok && p.IsEnabled() {
		providers[provider.NameFIM] = provider.NewFIMProvider(provider.FIMConfig{
			APIKey:   p.APIKey,
			Model:    p.Model,
			Endpoint: p.Endpoint,
			Timeout:  time.Duration(p.TimeoutMs) * time.Millisecond,
		})
	}
	if p, ok := cfg.Providers[provider.NameLocal]; ok && p.IsEnabled() {
		providers[provider.NameLocal] = provider.NewLocalProvider(provider.LocalConfig{
			Model:    p.Model,
			Endpoint: p.Endpoint,
			Timeout:  time.Duration(p.TimeoutMs) * time.Millisecond,
		})
	}

	return provider.NewRegistry(providers)
}

// buildVoiceEngine assembles the STT engine chain from [voice] and the
// restructurer from [providers.chat], per spec.md §4.6. The cloud engine
// is always constructed (it reports itself unavailable without an API
// key); the on-device engine is included only when the
// MURMUR_STT_HELPER environment variable names a helper binary.
func buildVoiceEngine(cfg config.Config) *voice.VoiceEngine {
	engines := []voice.Engine{
		voice.NewCloudEngine(voice.CloudConfig{
			APIKey:   cfg.Voice.DeepgramAPIKey,
			Endpoint: "https://api.deepgram.com/v1/listen",
			Language: cfg.Voice.Language,
			Timeout:  time.Duration(cfg.Voice.CaptureTimeoutMs) * time.Millisecond,
		}),
	}

	if helperName := os.Getenv("MURMUR_STT_HELPER"); helperName != "" {
		engines = append(engines, voice.NewOnDeviceEngine(voice.OnDeviceConfig{
			HelperName: helperName,
			Language:   cfg.Voice.Language,
		}))
	}

	var restructurer voice.Restructurer
	if chatCfg, ok := cfg.Providers[provider.NameChat]; ok && chatCfg.APIKey != "" {
		restructurer = voice.NewRemoteAPIRestructurer(chatCfg.APIKey, chatCfg.Model, chatCfg.Endpoint, 10*time.Second)
	}

	return voice.New(voice.Config{
		Enabled:             cfg.Voice.Enabled,
		Engines:             engines,
		Restructurer:        restructurer,
		ConfidenceThreshold: cfg.Voice.ConfidenceThreshold,
	})
}
