package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject pulls the JSON object out of raw LLM text.
//
// Providers are instructed to emit nothing but a single JSON object, but
// they do not always comply: the object may arrive wrapped in a Markdown
// code fence, or surrounded by commentary. This strips an optional fence
// and slices from the first '{' to the last '}' before anything tries to
// parse the text.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	s := strings.TrimSpace(text)

	s = stripCodeFence(s)

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object found in response text")
	}

	return json.RawMessage(s[start : end+1]), nil
}

// stripCodeFence removes a surrounding Markdown code fence, with or without
// a language tag (```json ... ```). Text without a fence is returned as-is.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	body := s[3:]
	// Drop the language tag up to the first newline, e.g. "json\n".
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		body = body[nl+1:]
	}
	if i := strings.LastIndex(body, "```"); i != -1 {
		body = body[:i]
	}
	return strings.TrimSpace(body)
}
