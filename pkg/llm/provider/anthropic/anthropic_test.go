package anthropic_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/rizz/pkg/llm"
	"github.com/papercomputeco/rizz/pkg/llm/provider"
	"github.com/papercomputeco/rizz/pkg/llm/provider/anthropic"
)

var _ provider.Provider = (*anthropic.Provider)(nil)

var _ = Describe("Anthropic Provider", func() {
	var p provider.Provider

	BeforeEach(func() {
		p = anthropic.New()
	})

	It("returns 'anthropic' as its name", func() {
		Expect(p.Name()).To(Equal("anthropic"))
	})

	It("targets the messages endpoint", func() {
		Expect(p.Endpoint()).To(Equal("messages"))
	})

	It("authenticates with x-api-key and a version header", func() {
		headers := p.Headers("sk-ant-test")
		Expect(headers).To(HaveKeyWithValue("x-api-key", "sk-ant-test"))
		Expect(headers).To(HaveKeyWithValue("anthropic-version", "2023-06-01"))
		Expect(headers).To(HaveKeyWithValue("content-type", "application/json"))
		Expect(headers).NotTo(HaveKey("authorization"))
	})

	It("serializes model, max_tokens and messages without temperature", func() {
		messages := []llm.Message{llm.NewTextMessage("user", "hello")}

		payload, err := json.Marshal(p.Query(messages))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(payload)).To(Equal(
			`{"model":"claude-3-opus-20240229","max_tokens":500,"messages":[{"role":"user","content":"hello"}]}`,
		))
	})
})
