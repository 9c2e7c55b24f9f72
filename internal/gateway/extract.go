package gateway

import (
	"strings"

	json "github.com/goccy/go-json"
)

// ExtractText pulls generated text out of a provider response payload using
// four strategies in order: the structured candidates/content/parts path, a
// plain top-level "text" field, a plain top-level "response" field, and as a
// last resort the whole payload stringified. The parser downstream always
// receives something.
func ExtractText(payload []byte) string {
	var decoded map[string]interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return string(payload)
	}

	if text := candidateText(decoded); text != "" {
		return text
	}
	if text, ok := decoded["text"].(string); ok && text != "" {
		return text
	}
	if text, ok := decoded["response"].(string); ok && text != "" {
		return text
	}

	if stringified, err := json.Marshal(decoded); err == nil {
		return string(stringified)
	}
	return string(payload)
}

// candidateText walks candidates[0].content.parts, concatenating the text of
// every part.
func candidateText(decoded map[string]interface{}) string {
	candidates, ok := decoded["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return ""
	}
	first, ok := candidates[0].(map[string]interface{})
	if !ok {
		return ""
	}
	content, ok := first["content"].(map[string]interface{})
	if !ok {
		return ""
	}
	parts, ok := content["parts"].([]interface{})
	if !ok {
		return ""
	}

	var b strings.Builder
	for _, rawPart := range parts {
		part, ok := rawPart.(map[string]interface{})
		if !ok {
			continue
		}
		if text, ok := part["text"].(string); ok {
			b.WriteString(text)
		}
	}
	return b.String()
}
