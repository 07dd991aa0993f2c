package provider

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"murmur/internal/protocol"
)

// LocalConfig configures the loopback generate-endpoint provider.
type LocalConfig struct {
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// LocalProvider talks to a local HTTP model server. It wraps the
// go-openai chat-completions client pointed at a loopback BaseURL and
// needs no API key, the same composition the Ollama adapter uses to
// reuse the OpenAI-compatible wire format against a custom endpoint.
type LocalProvider struct {
	cfg    LocalConfig
	client *openai.Client
}

func NewLocalProvider(cfg LocalConfig) *LocalProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:11434/v1"
	}
	clientCfg := openai.DefaultConfig("local")
	clientCfg.BaseURL = cfg.Endpoint
	clientCfg.HTTPClient.Timeout = cfg.Timeout
	return &LocalProvider{cfg: cfg, client: openai.NewClientWithConfig(clientCfg)}
}

func (p *LocalProvider) Name() string { return NameLocal }

// Complete implements Provider. It uses the same strict JSON array
// contract as ChatProvider, since a local model is assumed to speak an
// OpenAI-compatible chat API.
func (p *LocalProvider) Complete(ctx context.Context, req protocol.CompletionRequest, shellCtx Context) ([]protocol.CompletionItem, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildChatSystemPrompt(shellCtx)},
			{Role: openai.ChatMessageRoleUser, Content: buildChatUserPrompt(req, shellCtx)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("local provider: request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("local provider: empty response")
	}

	suggestions, ok := parseJSONSuggestions(resp.Choices[0].Message.Content)
	if !ok {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(suggestions))
	for i, s := range suggestions {
		if i >= 5 {
			break
		}
		items = append(items, protocol.CompletionItem{
			Text:        s.Text,
			Description: s.Description,
			Kind:        protocol.KindFullCommand,
			Score:       clampScore(1.0 - 0.1*float64(i)),
		})
	}
	return items, nil
}

func (p *LocalProvider) HealthCheck(ctx context.Context) error {
	return nil
}
