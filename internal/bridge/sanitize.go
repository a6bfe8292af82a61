package bridge

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxErrorTextLength bounds sanitized error text shown to the user.
const MaxErrorTextLength = 200

var (
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
	styleBlockPattern   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	scriptBlockPattern  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	failedPrefixPattern = regexp.MustCompile(`(?i)^(failed:\s*)+`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

// SanitizeErrorText makes upstream error text safe and readable: markup is
// stripped, duplicated "failed:" prefixes collapse to one, whitespace is
// normalized, and the result is truncated. Upstream failures are not
// guaranteed to return clean JSON — intermediary failure pages embed raw
// HTML and CSS.
func SanitizeErrorText(s string) string {
	s = styleBlockPattern.ReplaceAllString(s, " ")
	s = scriptBlockPattern.ReplaceAllString(s, " ")
	s = htmlTagPattern.ReplaceAllString(s, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if m := failedPrefixPattern.FindString(s); m != "" {
		s = "failed: " + strings.TrimSpace(s[len(m):])
	}

	if len(s) > MaxErrorTextLength {
		// Never cut inside a multi-byte rune.
		cut := MaxErrorTextLength
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = strings.TrimSpace(s[:cut]) + "…"
	}
	return s
}
