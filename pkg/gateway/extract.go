package gateway

import "encoding/json"

// ExtractText returns the first provider's generated text from a gateway
// response, read from choices[0].message.content.
// Any missing or mistyped segment, including invalid JSON, yields "".
func ExtractText(raw []byte) string {
	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ""
	}

	choices, ok := resp["choices"].([]any)
	if !ok || len(choices) == 0 {
		return ""
	}

	choice, ok := choices[0].(map[string]any)
	if !ok {
		return ""
	}

	message, ok := choice["message"].(map[string]any)
	if !ok {
		return ""
	}

	content, ok := message["content"].(string)
	if !ok {
		return ""
	}

	return content
}
