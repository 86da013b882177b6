// Package openai builds OpenAI Chat Completions requests for the gateway.
package openai

import (
	"github.com/papercomputeco/rizz/pkg/llm"
)

const (
	// Model is the chat model requested from OpenAI.
	Model = "gpt-4o"

	// Temperature is the sampling temperature sent with every request.
	Temperature = 0.5

	// MaxTokens caps the completion length.
	MaxTokens = 500

	// CredentialKey is the config key holding the OpenAI API key.
	CredentialKey = "providers.openai_api_key"

	endpoint = "chat/completions"
)

// Provider addresses OpenAI's Chat Completions API through the gateway.
type Provider struct{}

// New returns the OpenAI provider.
func New() *Provider { return &Provider{} }

// Name is the gateway routing name.
func (o *Provider) Name() string {
	return "openai"
}

func (o *Provider) Endpoint() string {
	return endpoint
}

func (o *Provider) CredentialKey() string {
	return CredentialKey
}

// Headers authenticates with a bearer token.
func (o *Provider) Headers(apiKey string) map[string]string {
	return map[string]string{
		"authorization": "Bearer " + apiKey,
		"content-type":  "application/json",
	}
}

func (o *Provider) Query(messages []llm.Message) any {
	return openaiRequest{
		Model:       Model,
		Messages:    messages,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}
}
