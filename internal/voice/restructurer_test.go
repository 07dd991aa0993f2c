package voice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRemoteAPIRestructurerRewritesTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": "ls -la"}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	r := NewRemoteAPIRestructurer("key", "model", srv.URL, 0)
	out := r.Restructure(context.Background(), "list files please", ModeCommand, "/tmp", "zsh")
	if out != "ls -la" {
		t.Errorf("expected restructured output, got %q", out)
	}
}

func TestRemoteAPIRestructurerFallsBackOnEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{"content": []map[string]string{}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	r := NewRemoteAPIRestructurer("key", "model", srv.URL, 0)
	out := r.Restructure(context.Background(), "raw transcript", ModeNatural, "/tmp", "zsh")
	if out != "raw transcript" {
		t.Errorf("expected fallback to raw transcript, got %q", out)
	}
}

func TestRemoteAPIRestructurerFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewRemoteAPIRestructurer("key", "model", srv.URL, 0)
	out := r.Restructure(context.Background(), "raw transcript", ModeCommand, "/tmp", "zsh")
	if out != "raw transcript" {
		t.Errorf("expected fallback to raw transcript, got %q", out)
	}
}

func TestLocalCLIRestructurerFallsBackWhenPathEmpty(t *testing.T) {
	r := NewLocalCLIRestructurer("", "model", 0)
	out := r.Restructure(context.Background(), "raw transcript", ModeCommand, "/tmp", "zsh")
	if out != "raw transcript" {
		t.Errorf("expected fallback when no CLI path configured, got %q", out)
	}
}

func TestSystemPromptForModes(t *testing.T) {
	cmdPrompt := systemPromptFor(ModeCommand, "/tmp", "zsh")
	if cmdPrompt == "" {
		t.Errorf("expected non-empty command prompt")
	}
	naturalPrompt := systemPromptFor(ModeNatural, "/tmp", "zsh")
	if naturalPrompt == cmdPrompt {
		t.Errorf("expected distinct prompts per mode")
	}
}
