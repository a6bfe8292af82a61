// Package latex provides lightweight structural validation and repair for
// LaTeX resume documents. It checks brace and environment balance without
// invoking a LaTeX compiler, so it is safe to run on every LLM response.
package latex

import (
	"regexp"
	"strings"
)

// commandPattern matches a LaTeX command token: a backslash followed by
// letters, terminated by an opening brace, whitespace, or end of string.
// A document with no such token is treated as plain prose, not LaTeX.
var commandPattern = regexp.MustCompile(`\\[a-zA-Z]+(\{|\s|$)`)

// envPattern matches \begin{name} and \end{name} tokens.
var envPattern = regexp.MustCompile(`\\(begin|end)\{([a-zA-Z*]+)\}`)

// QuickValidate checks a document for structural soundness:
// balanced curly braces at every prefix, at least one LaTeX command token,
// and per-name begin/end symmetry for environments.
//
// Environments that are count-balanced but interleaved out of order
// (open A, open B, close A, close B) still pass; detecting that requires
// full nesting analysis this checker deliberately avoids.
func QuickValidate(doc string) bool {
	if strings.TrimSpace(doc) == "" {
		return false
	}

	// Brace balance: running count must never go negative and must end at zero.
	depth := 0
	for _, r := range doc {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	if depth != 0 {
		return false
	}

	// Reject plain prose masquerading as LaTeX.
	if !commandPattern.MatchString(doc) {
		return false
	}

	// Environment symmetry: per-name open counters, never negative, all zero
	// at the end. This mirrors brace checking but per environment name.
	open := make(map[string]int)
	for _, m := range envPattern.FindAllStringSubmatch(doc, -1) {
		name := m[2]
		if m[1] == "begin" {
			open[name]++
		} else {
			open[name]--
			if open[name] < 0 {
				return false
			}
		}
	}
	for _, n := range open {
		if n != 0 {
			return false
		}
	}

	return true
}
