package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

var (
	translateToolName    = "translate"
	translateDescription = "Translate plain English into smooth, charming Atlanta-flavored slang with rizz. Optionally takes context describing the situation."
)

// translationFailed is the only error detail exposed to MCP clients.
const translationFailed = "translation failed"

// TranslateInput represents the input arguments for the translate tool.
type TranslateInput struct {
	Text    string  `json:"text" jsonschema:"the plain text to translate"`
	Context *string `json:"context,omitempty" jsonschema:"optional context about where or to whom the text is said"`
}

// TranslateOutput represents the output of the translate tool.
type TranslateOutput struct {
	Translation string `json:"translation"`
}

// handleTranslate processes a translate request.
func (s *Server) handleTranslate(ctx context.Context, _ *mcp.CallToolRequest, input TranslateInput) (*mcp.CallToolResult, TranslateOutput, error) {
	logger := s.config.Logger

	logger.Debug("MCP translate request",
		zap.Int("text_len", len(input.Text)),
		zap.Bool("has_context", input.Context != nil),
	)

	translation, err := s.config.Translator.Translate(ctx, input.Text, input.Context)
	if err != nil {
		logger.Error("MCP translate failed", zap.Error(err))
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: translationFailed},
			},
		}, TranslateOutput{}, nil
	}

	output := TranslateOutput{Translation: translation}

	// Tools returning structured content also return the serialized JSON in
	// a TextContent block for older clients.
	jsonBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal translate output", zap.Error(err))
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: translationFailed},
			},
		}, TranslateOutput{}, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, output, nil
}
