package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"murmur/internal/protocol"
)

func TestLocalProviderDefaultsEndpoint(t *testing.T) {
	p := NewLocalProvider(LocalConfig{})
	if p.cfg.Endpoint != "http://localhost:11434/v1" {
		t.Errorf("expected default loopback endpoint, got %s", p.cfg.Endpoint)
	}
}

func TestLocalProviderParsesChatCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"id":      "1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "local",
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]string{
						"role":    "assistant",
						"content": `[{"text":"ls -la","description":""}]`,
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p := NewLocalProvider(LocalConfig{Endpoint: srv.URL})
	items, err := p.Complete(context.Background(), protocol.CompletionRequest{Input: "l"}, Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Text != "ls -la" {
		t.Fatalf("unexpected items: %+v", items)
	}
}
