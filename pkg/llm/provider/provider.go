// Package provider defines the upstream LLM providers addressed through the
// gateway and the fixed order they are queried in.
package provider

import (
	"github.com/papercomputeco/rizz/pkg/llm"
)

// Provider describes how to address one upstream LLM API through the gateway.
// Each implementation knows its gateway endpoint, its authentication header
// shape and its native request body. Implementations are stateless and safe
// for concurrent use.
type Provider interface {
	// Name returns the canonical provider name (e.g., "openai", "anthropic").
	// The gateway routes on this value.
	Name() string

	// Endpoint returns the provider API path the gateway should call
	// (e.g., "chat/completions").
	Endpoint() string

	// CredentialKey returns the configuration key holding this provider's API key.
	CredentialKey() string

	// Headers returns the request headers for the provider, authenticated
	// with the given API key.
	Headers(apiKey string) map[string]string

	// Query wraps the conversation in the provider's native request body.
	// The messages are carried verbatim; only the surrounding shape differs.
	Query(messages []llm.Message) any
}
