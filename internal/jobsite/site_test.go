package jobsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		url  string
		want Site
	}{
		{"https://www.linkedin.com/jobs/view/12345", SiteLinkedIn},
		{"https://linkedin.com/jobs/view/12345?trk=abc", SiteLinkedIn},
		{"https://www.indeed.com/viewjob?jk=abc", SiteIndeed},
		{"https://www.glassdoor.com/job-listing/x", SiteGlassdoor},
		{"https://www.monster.com/job-openings/x", SiteMonster},
		{"https://www.ziprecruiter.com/jobs/x", SiteZipRecruiter},
		{"https://jobs.example.com/posting/1", SiteGeneric},
		// Exact-host matching: lookalike domains stay generic.
		{"https://linkedin.com.evil.example/jobs/view/1", SiteGeneric},
		{"not a url at all", SiteGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.url))
		})
	}
}

func TestStrategiesFor_AllSitesNonEmpty(t *testing.T) {
	sites := []Site{SiteLinkedIn, SiteIndeed, SiteGlassdoor, SiteMonster, SiteZipRecruiter, SiteGeneric}
	for _, site := range sites {
		s := StrategiesFor(site)
		assert.NotEmpty(t, s.Title, "site %s title", site)
		assert.NotEmpty(t, s.Company, "site %s company", site)
		assert.NotEmpty(t, s.Description, "site %s description", site)
	}
}

func TestStrategiesFor_LinkedInPrefersRichDescription(t *testing.T) {
	s := StrategiesFor(SiteLinkedIn)
	// The rich-text markup container must be tried before generic fallbacks.
	assert.Equal(t, ".show-more-less-html__markup", s.Description[0].Selector)
}
