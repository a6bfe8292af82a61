// Package llm - util.go provides shared utilities for response processing.
package llm

import "strings"

// CleanCodeFence removes a markdown code fence wrapping a response body.
// Models often wrap LaTeX output in ```latex ... ``` blocks even when
// instructed not to.
func CleanCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Skip a language identifier on the opening fence line.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
