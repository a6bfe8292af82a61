package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_TailoringPrompts(t *testing.T) {
	system, err := Get("tailoring.json", "system")
	require.NoError(t, err)
	// The content-fidelity contract must be present in the system prompt.
	assert.Contains(t, system, "MUST NEVER")
	assert.Contains(t, system, "dates, job titles, employers, degrees")
	assert.Contains(t, system, "quantitative metrics")

	user, err := Get("tailoring.json", "user")
	require.NoError(t, err)
	assert.Contains(t, user, "{{.JobTitle}}")
	assert.Contains(t, user, "{{.JobDescription}}")
	assert.Contains(t, user, "{{.MasterResume}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("tailoring.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "system")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	got := Format("Hello {{.Name}}, apply to {{.Company}}", map[string]string{
		"Name":    "Ada",
		"Company": "Acme",
	})
	assert.Equal(t, "Hello Ada, apply to Acme", got)
}
