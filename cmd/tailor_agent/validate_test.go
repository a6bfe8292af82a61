package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorton/resume-tailor/internal/latex"
)

func writeTexFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.tex")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunValidateBalancedDocument(t *testing.T) {
	validateInput = writeTexFile(t, `\documentclass{article}\begin{document}Hello\end{document}`)
	validateRepair = false

	assert.NoError(t, runValidate(nil, nil))
}

func TestRunValidateUnbalancedDocumentFails(t *testing.T) {
	validateInput = writeTexFile(t, `\documentclass{article}\begin{document}\section{Skills`)
	validateRepair = false

	err := runValidate(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced")
}

func TestRunValidateRepairsInPlace(t *testing.T) {
	path := writeTexFile(t, `\documentclass{article}\begin{document}\section{Skills`)
	validateInput = path
	validateRepair = true

	require.NoError(t, runValidate(nil, nil))

	repaired, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, latex.QuickValidate(string(repaired)))
}
