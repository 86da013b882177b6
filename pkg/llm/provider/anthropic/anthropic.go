// Package anthropic builds Anthropic Messages API requests for the gateway.
package anthropic

import (
	"github.com/papercomputeco/rizz/pkg/llm"
)

const (
	// Model is the Claude model requested from Anthropic.
	Model = "claude-3-opus-20240229"

	// MaxTokens is required by the messages API.
	MaxTokens = 500

	// Version is the anthropic-version header value.
	Version = "2023-06-01"

	// CredentialKey is the config key holding the Anthropic API key.
	CredentialKey = "providers.anthropic_api_key"

	endpoint = "messages"
)

// Provider addresses Anthropic's Messages API through the gateway.
type Provider struct{}

// New returns the Anthropic provider.
func New() *Provider { return &Provider{} }

// Name is the gateway routing name.
func (p *Provider) Name() string {
	return "anthropic"
}

func (p *Provider) Endpoint() string {
	return endpoint
}

func (p *Provider) CredentialKey() string {
	return CredentialKey
}

// Headers authenticates with the x-api-key header and pins the API version.
func (p *Provider) Headers(apiKey string) map[string]string {
	return map[string]string{
		"x-api-key":         apiKey,
		"content-type":      "application/json",
		"anthropic-version": Version,
	}
}

func (p *Provider) Query(messages []llm.Message) any {
	return anthropicRequest{
		Model:     Model,
		MaxTokens: MaxTokens,
		Messages:  messages,
	}
}
