package page

import (
	"strings"

	"github.com/kmorton/resume-tailor/internal/extract"
	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/kmorton/resume-tailor/internal/jobsite"
)

// ExtractFromPage pulls job fields out of a live page snapshot using the
// same per-site strategy lists as the headless extractor.
func ExtractFromPage(pageURL string, dom DOM) (*jobsite.JobPosting, error) {
	site := jobsite.Detect(pageURL)
	strategies := jobsite.StrategiesFor(site)

	title := firstMatch(dom, strategies.Title)
	company := firstMatch(dom, strategies.Company)
	description := extract.CleanDescription(longestMatch(dom, strategies.Description))

	// Both title and description must be present for the result to be usable.
	if title == "" && company == "" {
		return nil, faults.New(faults.KindExtractionFailed,
			"could not extract job information from the page")
	}
	if title == "" || len(description) < jobsite.MinDescriptionLength {
		return nil, faults.New(faults.KindDescriptionMissing,
			"unable to locate job description on the page")
	}
	if company == "" {
		company = "Unknown Company"
	}

	return &jobsite.JobPosting{
		Title:       title,
		CompanyName: company,
		Description: description,
		SourceURL:   pageURL,
		SiteType:    site,
	}, nil
}

func firstMatch(dom DOM, strategies []jobsite.Strategy) string {
	for _, s := range strategies {
		var text string
		if s.Attr != "" {
			text, _ = dom.Attr(s.Selector, s.Attr)
		} else {
			text = dom.Text(s.Selector)
		}
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return ""
}

// longestMatch keeps the longest candidate; a generic container only
// replaces the current best when strictly longer. If the preferred
// rich-text container already qualifies, fallbacks are skipped.
func longestMatch(dom DOM, strategies []jobsite.Strategy) string {
	best := ""
	for i, s := range strategies {
		text := strings.TrimSpace(dom.Text(s.Selector))
		if len(text) > len(best) {
			best = text
		}
		if i == 0 && len(best) >= jobsite.MinDescriptionLength {
			return best
		}
	}
	return best
}
