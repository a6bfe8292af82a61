// Package jobsite provides job-board detection and per-site selector
// strategies shared by the headless and in-page extractors.
package jobsite

import (
	"net/url"
	"strings"
)

// Site identifies a known job-board platform.
type Site string

// Supported job boards. Anything unrecognized falls through to SiteGeneric.
const (
	SiteLinkedIn     Site = "linkedin"
	SiteIndeed       Site = "indeed"
	SiteGlassdoor    Site = "glassdoor"
	SiteMonster      Site = "monster"
	SiteZipRecruiter Site = "ziprecruiter"
	SiteGeneric      Site = "generic"
)

// hostSites maps exact hostnames to their platform. Detection is by exact
// match so lookalike domains do not get board-specific treatment.
var hostSites = map[string]Site{
	"linkedin.com":         SiteLinkedIn,
	"www.linkedin.com":     SiteLinkedIn,
	"indeed.com":           SiteIndeed,
	"www.indeed.com":       SiteIndeed,
	"glassdoor.com":        SiteGlassdoor,
	"www.glassdoor.com":    SiteGlassdoor,
	"monster.com":          SiteMonster,
	"www.monster.com":      SiteMonster,
	"ziprecruiter.com":     SiteZipRecruiter,
	"www.ziprecruiter.com": SiteZipRecruiter,
}

// Detect identifies the job board a URL belongs to.
func Detect(rawURL string) Site {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return SiteGeneric
	}
	host := strings.ToLower(parsed.Hostname())
	if site, ok := hostSites[host]; ok {
		return site
	}
	return SiteGeneric
}
