// Package page extracts job fields from an already-rendered page DOM. It
// mirrors the headless extractor's heuristics but needs no navigation or
// interstitial handling: the caller is already past any gating.
package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DOM is the read-only document access the extractor needs. It is an
// injected capability rather than ambient state so the same heuristics run
// against synthetic documents in tests.
type DOM interface {
	// Text returns the trimmed text content of the first match, or "".
	Text(selector string) string
	// Attr returns the named attribute of the first match.
	Attr(selector, attr string) (string, bool)
	// AttrAll returns the attribute values of every match in document order.
	AttrAll(selector, attr string) []string
	// TextAll returns the raw text content of every match in document order.
	TextAll(selector string) []string
}

type goqueryDOM struct {
	doc *goquery.Document
}

// FromHTML parses an HTML snapshot into a DOM.
func FromHTML(html string) (DOM, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &goqueryDOM{doc: doc}, nil
}

func (d *goqueryDOM) Text(selector string) string {
	return strings.TrimSpace(d.doc.Find(selector).First().Text())
}

func (d *goqueryDOM) Attr(selector, attr string) (string, bool) {
	return d.doc.Find(selector).First().Attr(attr)
}

func (d *goqueryDOM) AttrAll(selector, attr string) []string {
	var out []string
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok && v != "" {
			out = append(out, v)
		}
	})
	return out
}

func (d *goqueryDOM) TextAll(selector string) []string {
	var out []string
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Text())
	})
	return out
}
