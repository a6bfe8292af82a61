package page

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// jobViewPattern matches a LinkedIn job-view path and captures the numeric
// posting ID.
var jobViewPattern = regexp.MustCompile(`/jobs/view/(\d+)`)

// shareAttrs are the copy-link data attributes probed on share-button
// elements, in fixed priority order. Order matters: resolution is
// first-match-wins and must be deterministic.
var shareAttrs = []string{
	"data-sharing-copy-url",
	"data-copy-url",
	"data-clipboard-text",
	"data-share-url",
}

// CollectCandidates gathers canonical-URL candidates from a page in the
// fixed resolution order: job-title anchor, rel=canonical, og:url, share
// link attributes, then embedded JSON-LD.
func CollectCandidates(dom DOM) []string {
	var candidates []string

	titleAnchors := []string{
		"h1 a[href*='/jobs/view/']",
		".top-card-layout__title a[href*='/jobs/view/']",
		".job-details-jobs-unified-top-card__job-title a",
		"a.job-card-list__title",
	}
	for _, sel := range titleAnchors {
		if href, ok := dom.Attr(sel, "href"); ok && href != "" {
			candidates = append(candidates, href)
		}
	}

	if href, ok := dom.Attr("link[rel='canonical']", "href"); ok {
		candidates = append(candidates, href)
	}
	if content, ok := dom.Attr("meta[property='og:url']", "content"); ok {
		candidates = append(candidates, content)
	}

	for _, attr := range shareAttrs {
		candidates = append(candidates, dom.AttrAll(fmt.Sprintf("[%s]", attr), attr)...)
	}

	// JSON-LD job postings carry the posting URL and sometimes the hiring
	// organization's link.
	for _, raw := range dom.TextAll("script[type='application/ld+json']") {
		if !gjson.Valid(raw) {
			continue
		}
		if u := gjson.Get(raw, "url").String(); u != "" {
			candidates = append(candidates, u)
		}
		if u := gjson.Get(raw, "hiringOrganization.sameAs").String(); u != "" {
			candidates = append(candidates, u)
		}
	}

	return candidates
}

// ResolveCanonicalJobURL returns the clean canonical job URL for the first
// candidate that percent-decodes to a linkedin.com job-view link, or ""
// when none resolves. Query and fragment noise is discarded by
// re-synthesizing the URL from the matched numeric ID.
func ResolveCanonicalJobURL(candidates []string) string {
	for _, candidate := range candidates {
		decoded, err := url.QueryUnescape(candidate)
		if err != nil {
			decoded = candidate
		}
		if !strings.Contains(decoded, "linkedin.com") {
			continue
		}
		m := jobViewPattern.FindStringSubmatch(decoded)
		if m == nil {
			continue
		}
		return "https://www.linkedin.com/jobs/view/" + m[1]
	}
	return ""
}
