package gateway

import (
	"github.com/papercomputeco/rizz/pkg/llm"
	"github.com/papercomputeco/rizz/pkg/llm/provider"
)

// ProviderRequest is one provider's entry in the gateway envelope.
type ProviderRequest struct {
	Provider string            `json:"provider"`
	Endpoint string            `json:"endpoint"`
	Headers  map[string]string `json:"headers"`
	Query    any               `json:"query"`
}

// Envelope is the ordered set of provider requests sent to the gateway as a
// single JSON array.
type Envelope []ProviderRequest

// CredentialSource resolves provider API keys by configuration key.
// An empty return value means the credential is absent.
type CredentialSource interface {
	Credential(key string) string
}

// StaticCredentials is a CredentialSource backed by a fixed map.
type StaticCredentials map[string]string

// Credential returns the value stored under key.
func (s StaticCredentials) Credential(key string) string {
	return s[key]
}

// Providers returns the provider names of the envelope, in order.
func (e Envelope) Providers() []string {
	names := make([]string, 0, len(e))
	for _, req := range e {
		names = append(names, req.Provider)
	}
	return names
}

// Assemble builds one ProviderRequest per provider, in the given order, each
// wrapping the same messages in the provider's native shape.
// Every provider's credential is checked before anything is built: a missing
// credential fails with a *ConfigurationError.
func Assemble(messages []llm.Message, providers []provider.Provider, creds CredentialSource) (Envelope, error) {
	keys := make([]string, len(providers))
	for i, p := range providers {
		keys[i] = creds.Credential(p.CredentialKey())
		if keys[i] == "" {
			return nil, &ConfigurationError{Key: p.CredentialKey()}
		}
	}

	envelope := make(Envelope, 0, len(providers))
	for i, p := range providers {
		envelope = append(envelope, ProviderRequest{
			Provider: p.Name(),
			Endpoint: p.Endpoint(),
			Headers:  p.Headers(keys[i]),
			Query:    p.Query(messages),
		})
	}

	return envelope, nil
}
