// Package security provides API key validation and masking for GitQuill.
package security

import (
	"fmt"
	"regexp"
	"strings"
)

// APIKeyFormat defines the expected key patterns per provider. A nil pattern
// means the provider does not use an API key.
var APIKeyFormat = map[string]*regexp.Regexp{
	"openai":    regexp.MustCompile(`^sk-[a-zA-Z0-9_-]{20,}$`),
	"anthropic": regexp.MustCompile(`^sk-ant-[a-zA-Z0-9_-]{20,}$`),
	"ollama":    nil,
}

// MaskAPIKey masks an API key, showing only the last 4 characters.
func MaskAPIKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// ValidateAPIKeyFormat validates the API key for a provider before any
// network call is made. Providers without a registered pattern only require
// the key to be present.
func ValidateAPIKeyFormat(provider, apiKey string) error {
	pattern, known := APIKeyFormat[provider]
	if known && pattern == nil {
		// Key-less provider.
		return nil
	}

	if apiKey == "" {
		return fmt.Errorf("API key is required for %s provider", provider)
	}

	if len(apiKey) < 20 {
		return fmt.Errorf("API key appears to be invalid (too short)")
	}

	if known && !pattern.MatchString(apiKey) {
		return fmt.Errorf("API key format appears invalid for %s provider", provider)
	}

	return nil
}
