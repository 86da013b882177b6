package anthropic

import "github.com/papercomputeco/rizz/pkg/llm"

// anthropicRequest represents Anthropic's messages request format.
type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []llm.Message `json:"messages"`
}
