// Package ai provides LLM provider implementations for GitQuill.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/gitquill/gitquill/internal/pkg/errors"
)

const (
	// DefaultAnthropicModel is the default model for Anthropic.
	DefaultAnthropicModel = "claude-3-5-haiku-latest"

	// DefaultAnthropicEndpoint is the Anthropic messages API endpoint.
	DefaultAnthropicEndpoint = "https://api.anthropic.com/v1/messages"

	// AnthropicVersion is the required API version header value.
	AnthropicVersion = "2023-06-01"
)

// AnthropicProvider implements the Provider interface for Anthropic.
// The messages API pins its own auth header shape (x-api-key plus a version
// header) and a fixed body schema, so the request is built directly.
type AnthropicProvider struct {
	httpClient     *http.Client
	config         ProviderConfig
	promptTemplate *PromptTemplate
	endpoint       string
}

// anthropicRequest is the messages API request body.
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

// anthropicMessage is a single message in the request.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the messages API response body.
type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(config ProviderConfig) *AnthropicProvider {
	if config.Model == "" {
		config.Model = DefaultAnthropicModel
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultAnthropicEndpoint
	}

	return &AnthropicProvider{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		config:         config,
		promptTemplate: NewPromptTemplate(),
		endpoint:       endpoint,
	}
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string {
	return ProviderNameAnthropic
}

// GenerateCommit generates a commit message using the Anthropic messages API.
func (p *AnthropicProvider) GenerateCommit(ctx context.Context, diff string) (string, error) {
	if p.config.APIKey == "" {
		return "", apperrors.NewMissingAPIKeyError(ProviderNameAnthropic)
	}

	userPrompt, err := p.promptTemplate.RenderUserPrompt(diff)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     p.config.Model,
		MaxTokens: p.config.MaxTokens,
		System:    p.promptTemplate.GetSystemPrompt(),
		Messages: []anthropicMessage{
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", p.config.APIKey)
	req.Header.Set("anthropic-version", AnthropicVersion)
	req.Header.Set("content-type", "application/json")

	apperrors.LogAPIRequest(ProviderNameAnthropic, p.config.Model, len(userPrompt))
	startTime := time.Now()

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewProviderError(ProviderNameAnthropic, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", apperrors.NewProviderError(ProviderNameAnthropic,
			fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody)))
	}

	var msgResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return "", apperrors.NewProviderError(ProviderNameAnthropic,
			fmt.Errorf("failed to decode response: %w", err))
	}

	if len(msgResp.Content) == 0 || msgResp.Content[0].Text == "" {
		return "", apperrors.NewProviderError(ProviderNameAnthropic, errors.New("empty response"))
	}

	rawText := msgResp.Content[0].Text
	apperrors.LogAPIResponse(ProviderNameAnthropic, len(rawText), time.Since(startTime))

	return Normalize(rawText), nil
}
