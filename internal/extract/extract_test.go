package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/kmorton/resume-tailor/internal/jobsite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobURL_Accepts(t *testing.T) {
	urls := []string{
		"https://www.linkedin.com/jobs/view/12345",
		"https://www.indeed.com/viewjob?jk=abc123",
		"https://www.glassdoor.com/job-listing/software-engineer",
		"https://careers.example.com/jobs/backend-engineer",
		"https://www.monster.com/job-openings/backend-dev",
	}
	for _, u := range urls {
		assert.NoError(t, ValidateJobURL(u), u)
	}
}

func TestValidateJobURL_Rejects(t *testing.T) {
	tests := []struct {
		url  string
		kind faults.Kind
	}{
		{"", faults.KindInvalidURL},
		{"not a url", faults.KindInvalidURL},
		{"ftp://example.com/jobs/1", faults.KindInvalidURL},
		{"https://www.linkedin.com/feed/", faults.KindInvalidURLFormat},
		{"https://example.com/about", faults.KindInvalidURLFormat},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateJobURL(tt.url)
			require.Error(t, err)
			assert.Equal(t, tt.kind, faults.KindOf(err))
		})
	}
}

func TestExtract_InvalidURLFailsFast(t *testing.T) {
	// No browser must be launched for a URL that fails the shape check,
	// so this returns immediately even with no Chrome installed.
	e := New(DefaultOptions())
	_, err := e.Extract(context.Background(), "https://example.com/not-a-job")
	require.Error(t, err)
	assert.Equal(t, faults.KindInvalidURLFormat, faults.KindOf(err))
}

func TestLocateBrowser_BadOverride(t *testing.T) {
	_, err := locateBrowser("/nonexistent/path/to/chrome")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome_path")
}

func TestLandmarkSetsCoverAllFields(t *testing.T) {
	s := jobsite.StrategiesFor(jobsite.SiteLinkedIn)
	sets := landmarkSets(s)
	require.Len(t, sets, 3)
	assert.Equal(t, s.Title, sets[0])
	assert.Equal(t, s.Company, sets[1])
	assert.Equal(t, s.Description, sets[2])
}

func TestMapBrowserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind faults.Kind
	}{
		{"deadline", context.DeadlineExceeded, faults.KindTimeout},
		{"missing binary", errors.New(`exec: "google-chrome": executable file not found in $PATH`), faults.KindExtractionFailed},
		{"dns", errors.New("page load error net::ERR_NAME_NOT_RESOLVED"), faults.KindNetworkError},
		{"refused", errors.New("page load error net::ERR_CONNECTION_REFUSED"), faults.KindNetworkError},
		{"other", errors.New("something odd"), faults.KindExtractionFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, faults.KindOf(mapBrowserError(tt.err)))
		})
	}
}
