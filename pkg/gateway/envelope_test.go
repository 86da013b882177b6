package gateway_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/rizz/pkg/conversation"
	"github.com/papercomputeco/rizz/pkg/gateway"
	"github.com/papercomputeco/rizz/pkg/llm/provider"
	"github.com/papercomputeco/rizz/pkg/llm/provider/anthropic"
	"github.com/papercomputeco/rizz/pkg/llm/provider/openai"
)

func testCredentials() gateway.StaticCredentials {
	return gateway.StaticCredentials{
		openai.CredentialKey:    "sk-openai",
		anthropic.CredentialKey: "sk-anthropic",
	}
}

var _ = Describe("Assemble", func() {
	var providers []provider.Provider

	BeforeEach(func() {
		providers = provider.Default()
	})

	Context("when both credentials are configured", func() {
		It("produces exactly one entry per provider in fixed order", func() {
			envelope, err := gateway.Assemble(conversation.Build("hello", nil), providers, testCredentials())
			Expect(err).NotTo(HaveOccurred())
			Expect(envelope).To(HaveLen(2))
			Expect(envelope.Providers()).To(Equal([]string{"openai", "anthropic"}))
		})

		It("sets provider specific endpoints and headers", func() {
			envelope, err := gateway.Assemble(conversation.Build("hello", nil), providers, testCredentials())
			Expect(err).NotTo(HaveOccurred())

			Expect(envelope[0].Endpoint).To(Equal("chat/completions"))
			Expect(envelope[0].Headers).To(HaveKeyWithValue("authorization", "Bearer sk-openai"))

			Expect(envelope[1].Endpoint).To(Equal("messages"))
			Expect(envelope[1].Headers).To(HaveKeyWithValue("x-api-key", "sk-anthropic"))
			Expect(envelope[1].Headers).To(HaveKeyWithValue("anthropic-version", "2023-06-01"))
		})

		It("carries identical messages to every provider", func() {
			ctx := "at the club"
			envelope, err := gateway.Assemble(conversation.Build("hello", &ctx), providers, testCredentials())
			Expect(err).NotTo(HaveOccurred())

			payload, err := json.Marshal(envelope)
			Expect(err).NotTo(HaveOccurred())

			var decoded []struct {
				Query struct {
					Messages []map[string]string `json:"messages"`
				} `json:"query"`
			}
			Expect(json.Unmarshal(payload, &decoded)).To(Succeed())
			Expect(decoded).To(HaveLen(2))
			Expect(decoded[0].Query.Messages).To(HaveLen(3))
			Expect(decoded[0].Query.Messages).To(Equal(decoded[1].Query.Messages))
			Expect(decoded[0].Query.Messages[2]["content"]).To(Equal("The context is: at the club"))
		})

		It("serializes as a JSON array", func() {
			envelope, err := gateway.Assemble(conversation.Build("hello", nil), providers, testCredentials())
			Expect(err).NotTo(HaveOccurred())

			payload, err := json.Marshal(envelope)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(payload)).To(HavePrefix("["))
		})
	})

	Context("when a credential is missing", func() {
		It("fails with a ConfigurationError for a missing OpenAI key", func() {
			creds := testCredentials()
			delete(creds, openai.CredentialKey)

			envelope, err := gateway.Assemble(conversation.Build("hello", nil), providers, creds)
			Expect(envelope).To(BeNil())

			var cfgErr *gateway.ConfigurationError
			Expect(err).To(BeAssignableToTypeOf(cfgErr))
			Expect(gateway.IsConfigurationError(err)).To(BeTrue())
			Expect(err.(*gateway.ConfigurationError).Key).To(Equal(openai.CredentialKey))
		})

		It("fails with a ConfigurationError for a missing Anthropic key", func() {
			creds := testCredentials()
			creds[anthropic.CredentialKey] = ""

			_, err := gateway.Assemble(conversation.Build("hello", nil), providers, creds)
			Expect(gateway.IsConfigurationError(err)).To(BeTrue())
			Expect(err.(*gateway.ConfigurationError).Key).To(Equal(anthropic.CredentialKey))
		})
	})
})
