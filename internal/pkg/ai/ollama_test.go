package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOllamaProvider_Defaults(t *testing.T) {
	provider := NewOllamaProvider(ProviderConfig{})

	assert.Equal(t, ProviderNameOllama, provider.Name())
	assert.Equal(t, DefaultOllamaModel, provider.config.Model)
	assert.Equal(t, DefaultMaxTokens, provider.config.MaxTokens)
}

func TestOllamaProvider_CustomModel(t *testing.T) {
	provider := NewOllamaProvider(ProviderConfig{Model: "llama3"})

	assert.Equal(t, "llama3", provider.config.Model)
}
