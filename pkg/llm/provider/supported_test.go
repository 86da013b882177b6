package provider_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/rizz/pkg/llm/provider"
)

var _ = Describe("Supported providers", func() {
	It("lists openai before anthropic", func() {
		Expect(provider.SupportedProviders()).To(Equal([]string{"openai", "anthropic"}))
	})

	It("creates every supported provider", func() {
		for _, name := range provider.SupportedProviders() {
			p, err := provider.New(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name()).To(Equal(name))
		}
	})

	It("rejects unknown providers", func() {
		_, err := provider.New("ollama")
		Expect(err).To(MatchError(ContainSubstring("unknown provider type")))
	})

	It("returns the default set in gateway order", func() {
		providers := provider.Default()
		Expect(providers).To(HaveLen(2))
		Expect(providers[0].Name()).To(Equal(provider.OpenAI))
		Expect(providers[1].Name()).To(Equal(provider.Anthropic))
	})

	It("uses distinct credential keys", func() {
		providers := provider.Default()
		Expect(providers[0].CredentialKey()).NotTo(Equal(providers[1].CredentialKey()))
	})
})
