package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickValidate_BalancedDocument(t *testing.T) {
	doc := `\documentclass{article}
\begin{document}
\section{Experience}
\begin{itemize}
\item{Built things}
\end{itemize}
\end{document}`
	assert.True(t, QuickValidate(doc))
}

func TestQuickValidate_Empty(t *testing.T) {
	assert.False(t, QuickValidate(""))
	assert.False(t, QuickValidate("   \n\t  "))
}

func TestQuickValidate_PlainProse(t *testing.T) {
	// No command tokens at all: not LaTeX, even though braces are balanced.
	assert.False(t, QuickValidate("hello world"))
	assert.False(t, QuickValidate("some {balanced} {braces} but no commands"))
}

func TestQuickValidate_BraceImbalance(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unclosed brace", `\textbf{bold`},
		{"stray closer", `\textbf{bold}}`},
		{"closer before opener", `}\textbf{bold}{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, QuickValidate(tt.doc))
		})
	}
}

func TestQuickValidate_EnvironmentSymmetry(t *testing.T) {
	assert.False(t, QuickValidate(`\begin{itemize}\item{A}`),
		"unclosed environment must fail even with balanced braces")
	assert.False(t, QuickValidate(`\item{A}\end{itemize}`),
		"end without a still-open begin must fail")
	assert.True(t, QuickValidate(`\begin{itemize}\item{A}\end{itemize}`))
}

func TestQuickValidate_NestedEnvironments(t *testing.T) {
	doc := `\begin{document}\begin{itemize}\item{x}\end{itemize}\end{document}`
	assert.True(t, QuickValidate(doc))
}

func TestQuickValidate_MisorderedButCountBalanced(t *testing.T) {
	// Known limitation: interleaved environments that are count-balanced
	// per name still validate. Pinned so a behavior change is deliberate.
	doc := `\begin{tabular}\begin{itemize}\end{tabular}\end{itemize}`
	assert.True(t, QuickValidate(doc))
}

func TestQuickValidate_StarredEnvironment(t *testing.T) {
	assert.True(t, QuickValidate(`\begin{align*}\end{align*}`))
	assert.False(t, QuickValidate(`\begin{align*}\end{align}`))
}
