package extract

import (
	"regexp"
	"strings"
)

var (
	// showMorePattern matches the "Show more"/"Show less" UI artifacts that
	// leak into description text, as whole tokens, case-insensitively.
	showMorePattern = regexp.MustCompile(`(?i)\bshow\s+(more|less)\b`)
	// multiSpacePattern matches runs of 3+ spaces.
	multiSpacePattern = regexp.MustCompile(`   +`)
	// multiBlankPattern matches runs of 3+ consecutive newlines.
	multiBlankPattern = regexp.MustCompile(`\n{3,}`)
)

// CleanDescription normalizes raw description text pulled out of the DOM:
// UI artifacts are stripped, lines are trimmed, empty lines dropped, and
// whitespace runs collapsed.
func CleanDescription(text string) string {
	text = showMorePattern.ReplaceAllString(text, "")
	text = multiBlankPattern.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = multiSpacePattern.ReplaceAllString(line, " ")
		if line == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}
