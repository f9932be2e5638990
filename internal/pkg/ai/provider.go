// Package ai provides LLM provider implementations for GitQuill.
package ai

import "context"

// ProviderConfig contains configuration for an LLM provider.
// It is constructed once at the CLI boundary and passed by value;
// providers never read ambient environment state.
type ProviderConfig struct {
	APIKey string
	Model  string
	// Endpoint overrides the provider's default API endpoint or server URL.
	Endpoint  string
	MaxTokens int
}

// Provider defines the interface for LLM providers.
type Provider interface {
	// GenerateCommit produces a commit message suggestion for the given diff.
	// Implementations perform exactly one outbound request per call and apply
	// Normalize to the raw model output before returning it.
	GenerateCommit(ctx context.Context, diff string) (string, error)
	Name() string
}
