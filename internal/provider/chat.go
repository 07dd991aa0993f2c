package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"murmur/internal/protocol"
)

// ChatConfig configures a remote chat completion provider.
type ChatConfig struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// ChatProvider builds a system prompt declaring a strict JSON output
// contract, calls a remote chat endpoint, and parses the response text
// as an array of candidate completions. Modeled on the Anthropic Claude
// client's request/response shape (system prompt + messages, bearer-style
// auth headers, a single httpClient with a fixed timeout).
type ChatProvider struct {
	cfg        ChatConfig
	httpClient *http.Client
}

// NewChatProvider creates a ChatProvider. A zero Timeout defaults to 5s,
// matching the daemon's default per-attempt provider timeout.
func NewChatProvider(cfg ChatConfig) *ChatProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &ChatProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *ChatProvider) Name() string { return NameChat }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequestBody struct {
	Model     string        `json:"model"`
	System    string        `json:"system"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type chatResponseBody struct {
	Content []chatContentBlock `json:"content"`
}

type chatSuggestion struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}

// Complete implements Provider.
func (p *ChatProvider) Complete(ctx context.Context, req protocol.CompletionRequest, shellCtx Context) ([]protocol.CompletionItem, error) {
	if p.cfg.APIKey == "" {
		return nil, fmt.Errorf("chat provider: API key not set")
	}

	body := chatRequestBody{
		Model:     p.cfg.Model,
		System:    buildChatSystemPrompt(shellCtx),
		Messages:  []chatMessage{{Role: "user", Content: buildChatUserPrompt(req, shellCtx)}},
		MaxTokens: 512,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("chat provider: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("chat provider: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat provider: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chat provider: status %d", resp.StatusCode)
	}

	var parsed chatResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("chat provider: decode response: %w", err)
	}
	if len(parsed.Content) == 0 {
		return nil, fmt.Errorf("chat provider: empty response")
	}

	suggestions, ok := parseJSONSuggestions(parsed.Content[0].Text)
	if !ok {
		// Malformed JSON from the model is not a provider error — it
		// just yields no items, and since no error is returned the chain
		// stops here with this provider reported as the winner.
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

func (p *ChatProvider) HealthCheck(ctx context.Context) error {
	if p.cfg.APIKey == "" {
		return fmt.Errorf("chat provider: API key not set")
	}
	return nil
}

func buildChatSystemPrompt(shellCtx Context) string {
	var b strings.Builder
	b.WriteString("You are a terminal autocomplete engine. Respond with ONLY a JSON array of ")
	b.WriteString("objects shaped {\"text\": string, \"description\": string}, at most 5 entries, ")
	b.WriteString("ordered by relevance. No prose, no markdown fences.\n")

	if shellCtx.Git != nil {
		b.WriteString(fmt.Sprintf("git branch: %s (dirty=%t)\n", shellCtx.Git.Branch, shellCtx.Git.Dirty))
	}
	if shellCtx.Project != "" {
		b.WriteString("project type: " + shellCtx.Project + "\n")
	}
	for _, ev := range shellCtx.EnvVars {
		b.WriteString(ev.Key + "=" + ev.Value + "\n")
	}
	return b.String()
}

func buildChatUserPrompt(req protocol.CompletionRequest, shellCtx Context) string {
	var b strings.Builder
	b.WriteString("shell: " + shellCtx.Shell + "\n")
	b.WriteString("cwd: " + shellCtx.Cwd + "\n")
	b.WriteString("partial input: " + req.Input + "\n")

	history := shellCtx.History
	if len(history) > 10 {
		history = history[:10]
	}
	if len(history) > 0 {
		b.WriteString("recent history:\n")
		for _, h := range history {
			b.WriteString("  " + h + "\n")
		}
	}
	return b.String()
}

// parseJSONSuggestions tolerates Markdown code-fencing around the JSON
// array, stripping a leading ```json / ``` and a trailing ``` before
// decoding, per spec.md §4.5.
func parseJSONSuggestions(text string) ([]chatSuggestion, bool) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var suggestions []chatSuggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, false
	}
	return suggestions, true
}
