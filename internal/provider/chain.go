package provider

import (
	"context"
	"log"

	"murmur/internal/protocol"
)

// Names of the three concrete provider kinds, used both as config keys
// and as the chain membership per route class.
const (
	NameChat  = "chat"
	NameFIM   = "fim"
	NameLocal = "local"
)

// chains maps each route class to the ordered list of provider names
// tried for it, per spec.md §4.5.
var chains = map[RouteClass][]string{
	RouteShell: {NameChat, NameLocal},
	RouteCode:  {NameFIM, NameChat, NameLocal},
	RouteLocal: {NameLocal, NameChat},
}

// Registry holds the configured providers, keyed by name. Providers are
// immutable after construction and safe to share across goroutines.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds a Registry from the given providers, skipping any
// nil entries (a provider that was not configured/enabled).
func NewRegistry(providers map[string]Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for name, p := range providers {
		if p != nil {
			r.providers[name] = p
		}
	}
	return r
}

// Names returns the configured provider names, in a stable order.
func (r *Registry) Names() []string {
	order := []string{NameChat, NameFIM, NameLocal}
	var out []string
	for _, n := range order {
		if _, ok := r.providers[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Complete runs the provider chain for class, trying each configured
// candidate in order and returning the first success. Per spec.md §4.5 /
// §4.7, a failing provider is logged at warn and the chain advances;
// an exhausted chain returns (nil, "none") — not an error.
func (r *Registry) Complete(ctx context.Context, class RouteClass, req protocol.CompletionRequest, shellCtx Context) ([]protocol.CompletionItem, string) {
	for _, name := range chains[class] {
		p, ok := r.providers[name]
		if !ok {
			continue
		}
		items, err := p.Complete(ctx, req, shellCtx)
		if err != nil {
			log.Printf("[provider] %s: %v", name, err)
			continue
		}
		return items, p.Name()
	}
	return nil, "none"
}
