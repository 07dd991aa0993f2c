package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"murmur/internal/protocol"
)

// FIMConfig configures a remote fill-in-the-middle provider.
type FIMConfig struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// FIMProvider calls a fill-in-the-middle completion endpoint through the
// go-openai SDK's legacy Completions API, which carries the Prompt/Suffix
// fields this style of API needs.
type FIMProvider struct {
	cfg    FIMConfig
	client *openai.Client
}

// NewFIMProvider creates a FIMProvider pointed at cfg.Endpoint when set,
// otherwise the default OpenAI API.
func NewFIMProvider(cfg FIMConfig) *FIMProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = cfg.Endpoint
	}
	clientCfg.HTTPClient.Timeout = cfg.Timeout
	return &FIMProvider{cfg: cfg, client: openai.NewClientWithConfig(clientCfg)}
}

func (p *FIMProvider) Name() string { return NameFIM }

// Complete implements Provider.
func (p *FIMProvider) Complete(ctx context.Context, req protocol.CompletionRequest, shellCtx Context) ([]protocol.CompletionItem, error) {
	if p.cfg.APIKey == "" {
		return nil, fmt.Errorf("fim provider: API key not set")
	}

	prefix := buildFIMPrefix(req, shellCtx)

	resp, err := p.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       p.cfg.Model,
		Prompt:      prefix,
		Suffix:      "\n",
		Stop:        []string{"\n\n", "$ "},
		Temperature: 0.1,
		MaxTokens:   128,
	})
	if err != nil {
		return nil, fmt.Errorf("fim provider: request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("fim provider: empty response")
	}

	completion := resp.Choices[0].Text
	return buildFIMSuggestions(req.Input, completion), nil
}

func (p *FIMProvider) HealthCheck(ctx context.Context) error {
	if p.cfg.APIKey == "" {
		return fmt.Errorf("fim provider: API key not set")
	}
	return nil
}

// buildFIMPrefix decorates shell/cwd/git/project/recent-history context
// as comments, then terminates with the shell prompt and partial input,
// per spec.md §4.5.
func buildFIMPrefix(req protocol.CompletionRequest, shellCtx Context) string {
	var b strings.Builder
	b.WriteString("# shell: " + shellCtx.Shell + "\n")
	b.WriteString("# cwd: " + shellCtx.Cwd + "\n")
	if shellCtx.Git != nil {
		b.WriteString("# git branch: " + shellCtx.Git.Branch + "\n")
	}
	if shellCtx.Project != "" {
		b.WriteString("# project: " + shellCtx.Project + "\n")
	}

	history := shellCtx.History
	if len(history) > 5 {
		history = history[:5]
	}
	for _, h := range history {
		b.WriteString("# " + h + "\n")
	}

	b.WriteString("$ " + req.Input)
	return b.String()
}

// buildFIMSuggestions turns the raw completion text into a list of
// candidate suggestions: the input followed by the completion's first
// line is always first, and any further non-empty, non-comment lines
// follow with a decaying score.
func buildFIMSuggestions(input, completion string) []protocol.CompletionItem {
	lines := strings.Split(completion, "\n")
	items := []protocol.CompletionItem{{
		Text:  input + lines[0],
		Kind:  protocol.KindFullCommand,
		Score: 1.0,
	}}

	if len(lines) <= 1 {
		return items
	}

	i := 0
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i++
		items = append(items, protocol.CompletionItem{
			Text:  line,
			Kind:  protocol.KindFullCommand,
			Score: clampScore(0.8 - 0.1*float64(i)),
		})
	}
	return items
}
