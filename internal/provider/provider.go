// Package provider implements the polymorphic completion-provider
// capability from spec.md §4.5: three concrete backends (remote chat,
// remote fill-in-the-middle, local HTTP), a router that classifies a
// request into a route class, and an ordered fallback chain per class.
package provider

import (
	"context"

	"murmur/internal/protocol"
)

// Context is the subset of the collected shell context a provider needs
// to build its prompt.
type Context struct {
	Git     *protocol.GitInfo
	Project string
	EnvVars []protocol.EnvVar
	Shell   string
	Cwd     string
	History []string
}

// Provider is the capability every completion backend implements:
// name/complete/health_check, per spec.md §4.5's design note that
// providers are capability-based, not a class hierarchy.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req protocol.CompletionRequest, shellCtx Context) ([]protocol.CompletionItem, error)
	HealthCheck(ctx context.Context) error
}

// clampScore keeps a provider-computed relevance score within [0, 1].
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
