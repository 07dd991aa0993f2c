package provider

import (
	"context"
	"errors"
	"testing"

	"murmur/internal/protocol"
)

type fakeProvider struct {
	name  string
	items []protocol.CompletionItem
	err   error
}

func (f *fakeProvider) Name() string { return f.name }
func (f *fakeProvider) Complete(ctx context.Context, req protocol.CompletionRequest, shellCtx Context) ([]protocol.CompletionItem, error) {
	return f.items, f.err
}
func (f *fakeProvider) HealthCheck(ctx context.Context) error { return nil }

func TestRegistrySkipsNilProviders(t *testing.T) {
	r := NewRegistry(map[string]Provider{NameChat: nil, NameLocal: &fakeProvider{name: NameLocal}})
	names := r.Names()
	if len(names) != 1 || names[0] != NameLocal {
		t.Fatalf("expected only local registered, got %v", names)
	}
}

func TestCompleteFallsThroughChainOnError(t *testing.T) {
	chat := &fakeProvider{name: NameChat, err: errors.New("boom")}
	local := &fakeProvider{name: NameLocal, items: []protocol.CompletionItem{{Text: "ls"}}}
	r := NewRegistry(map[string]Provider{NameChat: chat, NameLocal: local})

	items, chosen := r.Complete(context.Background(), RouteShell, protocol.CompletionRequest{}, Context{})
	if chosen != NameLocal {
		t.Fatalf("expected local to win after chat fails, got %s", chosen)
	}
	if len(items) != 1 || items[0].Text != "ls" {
		t.Errorf("unexpected items: %v", items)
	}
}

func TestCompleteExhaustedChainReturnsNone(t *testing.T) {
	r := NewRegistry(nil)
	items, chosen := r.Complete(context.Background(), RouteShell, protocol.CompletionRequest{}, Context{})
	if chosen != "none" {
		t.Errorf("expected none, got %s", chosen)
	}
	if items != nil {
		t.Errorf("expected nil items, got %v", items)
	}
}
