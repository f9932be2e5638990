// Package ai provides LLM provider implementations for GitQuill.
package ai

import "strings"

// ProviderName constants for supported providers.
const (
	ProviderNameOpenAI    = "openai"
	ProviderNameAnthropic = "anthropic"
	ProviderNameOllama    = "ollama"

	// DefaultProviderName is the provider used when an identifier
	// is empty or unrecognized.
	DefaultProviderName = ProviderNameOpenAI
)

// Factory constructs a Provider from a configuration.
type Factory func(cfg ProviderConfig) Provider

var registry = map[string]Factory{
	ProviderNameOpenAI:    func(cfg ProviderConfig) Provider { return NewOpenAIProvider(cfg) },
	ProviderNameAnthropic: func(cfg ProviderConfig) Provider { return NewAnthropicProvider(cfg) },
	ProviderNameOllama:    func(cfg ProviderConfig) Provider { return NewOllamaProvider(cfg) },
}

// CanonicalName maps an arbitrary provider identifier to the registered
// name it will resolve to.
func CanonicalName(name string) string {
	folded := strings.ToLower(strings.TrimSpace(name))
	if _, ok := registry[folded]; ok {
		return folded
	}
	return DefaultProviderName
}

// Resolve returns the factory registered under the given identifier.
// Identifiers are case-folded, and unrecognized identifiers resolve to the
// default factory: Resolve is a total function and never fails. Missing or
// invalid API keys are a caller concern, checked before the session starts.
func Resolve(name string) Factory {
	if f, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f
	}
	return registry[DefaultProviderName]
}
