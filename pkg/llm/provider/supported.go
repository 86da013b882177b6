package provider

import (
	"fmt"

	"github.com/papercomputeco/rizz/pkg/llm/provider/anthropic"
	"github.com/papercomputeco/rizz/pkg/llm/provider/openai"
)

// Supported provider type constants
const (
	OpenAI    = "openai"
	Anthropic = "anthropic"
)

// SupportedProviders returns the list of all supported provider type names,
// in the order they are sent to the gateway.
func SupportedProviders() []string {
	return []string{OpenAI, Anthropic}
}

// New creates a new Provider instance for the given provider type.
// Returns an error if the provider type is not recognized.
func New(providerType string) (Provider, error) {
	switch providerType {
	case OpenAI:
		return openai.New(), nil
	case Anthropic:
		return anthropic.New(), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %q (supported: %v)", providerType, SupportedProviders())
	}
}

// Default returns the fixed provider set queried for every translation.
// The first entry is the authoritative one: its result is the translation.
func Default() []Provider {
	providers := make([]Provider, 0, len(SupportedProviders()))
	for _, name := range SupportedProviders() {
		p, err := New(name)
		if err != nil {
			panic(err)
		}
		providers = append(providers, p)
	}
	return providers
}
