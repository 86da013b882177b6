package openai

import "github.com/papercomputeco/rizz/pkg/llm"

// openaiRequest represents OpenAI's chat completions request format.
// Field order matches the wire order the gateway receives.
type openaiRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}
