package gateway_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/rizz/pkg/gateway"
)

var _ = DescribeTable("ExtractText",
	func(raw string, expected string) {
		Expect(gateway.ExtractText([]byte(raw))).To(Equal(expected))
	},
	Entry("well-formed response", `{"choices":[{"message":{"content":"X"}}]}`, "X"),
	Entry("only the first choice is used", `{"choices":[{"message":{"content":"first"}},{"message":{"content":"second"}}]}`, "first"),
	Entry("empty object", `{}`, ""),
	Entry("empty choices", `{"choices":[]}`, ""),
	Entry("choices is not an array", `{"choices":{"message":{"content":"X"}}}`, ""),
	Entry("choice is not an object", `{"choices":["X"]}`, ""),
	Entry("missing message", `{"choices":[{"text":"X"}]}`, ""),
	Entry("content is not a string", `{"choices":[{"message":{"content":42}}]}`, ""),
	Entry("null content", `{"choices":[{"message":{"content":null}}]}`, ""),
	Entry("top-level array", `[{"choices":[{"message":{"content":"X"}}]}]`, ""),
	Entry("invalid JSON", `not json`, ""),
	Entry("empty body", ``, ""),
)
