package latex

import "strings"

// Repair restores brace and environment count symmetry on a best-effort
// basis. It appends one closing brace per net-unclosed brace, then appends
// \end{name} for every unclosed environment in reverse-open order
// (last opened, first closed). It never fails; callers must re-run
// QuickValidate on the result to decide whether repair succeeded.
//
// Repair does not touch subtler defects: stray closing braces, malformed
// commands, or misordered-but-balanced environments are left as-is.
func Repair(doc string) string {
	var b strings.Builder
	b.WriteString(doc)

	// Net-unclosed braces. A running count that dips negative means stray
	// closers, which appending cannot fix; only the positive net is repaired.
	opens := strings.Count(doc, "{")
	closes := strings.Count(doc, "}")
	for i := 0; i < opens-closes; i++ {
		b.WriteString("}")
	}

	// Track environment opens in document order so unclosed ones can be
	// closed innermost-first. An \end consumes the most recent matching open.
	var stack []string
	for _, m := range envPattern.FindAllStringSubmatch(doc, -1) {
		name := m[2]
		if m[1] == "begin" {
			stack = append(stack, name)
			continue
		}
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i] == name {
				stack = append(stack[:i], stack[i+1:]...)
				break
			}
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		b.WriteString("\\end{")
		b.WriteString(stack[i])
		b.WriteString("}")
	}

	return b.String()
}
