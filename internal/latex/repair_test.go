package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair_UnclosedBraceAndEnvironment(t *testing.T) {
	got := Repair(`\begin{itemize}\item{A`)
	assert.Equal(t, `\begin{itemize}\item{A}\end{itemize}`, got)
	assert.True(t, QuickValidate(got))
}

func TestRepair_BalancedDocumentUnchanged(t *testing.T) {
	doc := `\begin{document}\section{Skills}\end{document}`
	assert.Equal(t, doc, Repair(doc))
}

func TestRepair_Idempotent(t *testing.T) {
	doc := `\begin{document}\textbf{x}\end{document}`
	assert.Equal(t, Repair(doc), Repair(Repair(doc)))
}

func TestRepair_MultipleUnclosedEnvironments_ReverseOrder(t *testing.T) {
	got := Repair(`\begin{document}\begin{itemize}\item{A}`)
	// Innermost environment closed first.
	assert.True(t, strings.HasSuffix(got, `\end{itemize}\end{document}`))
	assert.True(t, QuickValidate(got))
}

func TestRepair_CountsPerName(t *testing.T) {
	// Two opens, one close: exactly one \end{itemize} appended.
	doc := `\begin{itemize}\begin{itemize}\item{A}\end{itemize}`
	got := Repair(doc)
	assert.Equal(t, 2, strings.Count(got, `\end{itemize}`))
	assert.True(t, QuickValidate(got))
}

func TestRepair_CannotFixMissingCommands(t *testing.T) {
	// Plain prose stays invalid: repair only restores count symmetry.
	got := Repair("hello world {")
	assert.False(t, QuickValidate(got))
}

func TestRepair_StrayCloserNotFixed(t *testing.T) {
	// A closing brace with no opener cannot be repaired by appending.
	doc := `\textbf{x}}`
	got := Repair(doc)
	assert.Equal(t, doc, got)
	assert.False(t, QuickValidate(got))
}

func TestRepair_NeverBreaksBalancedDocument(t *testing.T) {
	docs := []string{
		`\documentclass{article}\begin{document}\end{document}`,
		`\section{A}\begin{itemize}\item{x}\end{itemize}`,
		`\item text with no braces`,
	}
	for _, doc := range docs {
		assert.True(t, QuickValidate(Repair(doc)), "doc: %s", doc)
	}
}
