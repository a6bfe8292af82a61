// Package extract drives a headless browser to pull structured fields out of
// job-posting pages. Each call owns its own browser context; concurrent
// extractions do not share state.
package extract

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/kmorton/resume-tailor/internal/jobsite"
)

// DefaultTimeout bounds a whole extraction attempt including navigation.
const DefaultTimeout = 45 * time.Second

// Options configures a single extraction.
type Options struct {
	// Timeout bounds the whole attempt. Zero means DefaultTimeout.
	Timeout time.Duration
	// Headless runs the browser without a window. Disable only for local
	// debugging.
	Headless bool
	// ChromePath overrides browser binary discovery.
	ChromePath string
	// Verbose logs each extraction phase.
	Verbose bool
}

// DefaultOptions returns the options used by the server path.
func DefaultOptions() Options {
	return Options{Timeout: DefaultTimeout, Headless: true}
}

// Extractor extracts job postings with a headless browser.
type Extractor struct {
	opts Options
}

// New creates an Extractor with the given options.
func New(opts Options) *Extractor {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Extractor{opts: opts}
}

// ValidateJobURL checks the URL syntactically and confirms it has the shape
// of a job posting before any browser resources are spent.
func ValidateJobURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return faults.Wrap(faults.KindInvalidURL, "not a valid absolute URL", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return faults.Newf(faults.KindInvalidURL, "unsupported scheme %q", parsed.Scheme)
	}
	path := strings.ToLower(parsed.Path)
	if !strings.Contains(path, "/jobs/") && !strings.Contains(path, "/job/") &&
		!strings.Contains(path, "viewjob") && !strings.Contains(path, "job-listing") &&
		!strings.Contains(path, "/job-openings/") {
		return faults.New(faults.KindInvalidURLFormat,
			"URL does not look like a job posting; paste the posting's own link, not a search or feed page")
	}
	return nil
}

// Extract navigates to url, dismisses interstitials, and pulls structured
// job fields via cascading selector strategies. The browser context is torn
// down on every exit path.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*jobsite.JobPosting, error) {
	if err := ValidateJobURL(rawURL); err != nil {
		return nil, err
	}

	site := jobsite.Detect(rawURL)
	if e.opts.Verbose {
		log.Printf("[EXTRACT] site=%s url=%s", site, rawURL)
	}

	execPath, err := locateBrowser(e.opts.ChromePath)
	if err != nil {
		return nil, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions(execPath, e.opts.Headless)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, e.opts.Timeout)
	defer cancelTimeout()

	// Navigation is the one fatal wait; everything downstream degrades
	// gracefully on timeout.
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body"),
		waitNetworkSettled(750*time.Millisecond, 8*time.Second),
		chromedp.Sleep(2*time.Second),
	)
	if err != nil {
		return nil, mapBrowserError(err)
	}

	// Dynamic modals reappear, so dismissal runs twice with a short delay.
	if err := dismissInterstitials(browserCtx, 2, 1500*time.Millisecond); err != nil {
		return nil, mapBrowserError(err)
	}

	strategies := jobsite.StrategiesFor(site)
	waitForLandmarks(browserCtx, strategies, e.opts.Verbose)

	title := firstMatch(browserCtx, strategies.Title)
	company := firstMatch(browserCtx, strategies.Company)
	description := longestMatch(browserCtx, strategies.Description)

	// Recovery pass: scrolling the container into view triggers lazy-loaded
	// content on some boards.
	if len(description) < jobsite.MinDescriptionLength {
		if e.opts.Verbose {
			log.Printf("[EXTRACT] description too short (%d chars), running recovery scroll", len(description))
		}
		scrollAndWait(browserCtx, strategies.Description)
		description = longestMatch(browserCtx, strategies.Description)
	}

	description = CleanDescription(description)

	if title == "" && company == "" {
		return nil, faults.New(faults.KindExtractionFailed,
			"could not extract job information from the page")
	}
	if len(description) < jobsite.MinDescriptionLength {
		return nil, faults.New(faults.KindDescriptionMissing,
			"unable to locate job description on the page")
	}

	if title == "" {
		title = "Unknown Title"
	}
	if company == "" {
		company = "Unknown Company"
	}

	return &jobsite.JobPosting{
		Title:       strings.TrimSpace(title),
		CompanyName: strings.TrimSpace(company),
		Description: description,
		SourceURL:   rawURL,
		SiteType:    site,
	}, nil
}

// waitForLandmarks waits, bounded and non-fatally, for plausible content
// landmarks. A miss just means extraction proceeds against whatever loaded.
func waitForLandmarks(ctx context.Context, s jobsite.FieldStrategies, verbose bool) {
	for _, strategies := range landmarkSets(s) {
		if len(strategies) == 0 {
			continue
		}
		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := chromedp.Run(waitCtx, chromedp.WaitVisible(strategies[0].Selector, chromedp.ByQuery))
		cancel()
		if err != nil && verbose {
			log.Printf("[EXTRACT] landmark %q not visible: %v", strategies[0].Selector, err)
		}
	}
}

// landmarkSets lists the field strategy groups to wait on, one per extracted
// field: title, company, then description.
func landmarkSets(s jobsite.FieldStrategies) [][]jobsite.Strategy {
	return [][]jobsite.Strategy{s.Title, s.Company, s.Description}
}

// firstMatch evaluates strategies in order and returns the first non-empty
// text. Each individual query is bounded so a missing selector cannot stall
// the whole extraction.
func firstMatch(ctx context.Context, strategies []jobsite.Strategy) string {
	for _, s := range strategies {
		if text := queryText(ctx, s); text != "" {
			return text
		}
	}
	return ""
}

// longestMatch evaluates every strategy and keeps the longest qualifying
// text. A generic container only replaces the current best when strictly
// longer, so rich-text containers win ties.
func longestMatch(ctx context.Context, strategies []jobsite.Strategy) string {
	best := ""
	for i, s := range strategies {
		text := queryText(ctx, s)
		if len(text) > len(best) {
			best = text
		}
		// The preferred rich-text container qualified; skip generic fallbacks.
		if i == 0 && len(best) >= jobsite.MinDescriptionLength {
			return best
		}
	}
	return best
}

func queryText(ctx context.Context, s jobsite.Strategy) string {
	qCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var text string
	var err error
	if s.Attr != "" {
		var ok bool
		err = chromedp.Run(qCtx, chromedp.AttributeValue(s.Selector, s.Attr, &text, &ok, chromedp.ByQuery))
		if !ok {
			return ""
		}
	} else {
		err = chromedp.Run(qCtx, chromedp.Text(s.Selector, &text, chromedp.ByQuery))
	}
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// scrollAndWait scrolls the first description container into view and waits
// briefly for lazy content to render.
func scrollAndWait(ctx context.Context, strategies []jobsite.Strategy) {
	if len(strategies) == 0 {
		return
	}
	sCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_ = chromedp.Run(sCtx,
		chromedp.ScrollIntoView(strategies[0].Selector, chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
	)
}

// mapBrowserError converts low-level chromedp failures into the typed kinds
// the API layer maps to statuses and remediation text.
func mapBrowserError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return faults.Wrap(faults.KindTimeout, "page did not load within the timeout", err)
	case strings.Contains(err.Error(), "executable file not found"),
		strings.Contains(err.Error(), "exec:"):
		return faults.Wrap(faults.KindExtractionFailed,
			"no Chrome or Chromium browser found; install one or set the chrome_path setting", err)
	case strings.Contains(err.Error(), "net::ERR_NAME_NOT_RESOLVED"),
		strings.Contains(err.Error(), "net::ERR_CONNECTION"),
		strings.Contains(err.Error(), "net::ERR_INTERNET_DISCONNECTED"):
		return faults.Wrap(faults.KindNetworkError, "could not reach the job posting", err)
	default:
		return faults.Wrap(faults.KindExtractionFailed, "browser automation failed", err)
	}
}
