// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/kmorton/resume-tailor/internal/jobsite"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// descriptionPreviewLines is how much of a description to show
	descriptionPreviewLines = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobPosting outputs a human-readable summary of an extracted posting.
func (p *Printer) PrintJobPosting(posting *jobsite.JobPosting) {
	if posting == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", posting.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", posting.CompanyName))
	sb.WriteString(fmt.Sprintf("Site:     %s\n", posting.SiteType))
	sb.WriteString(fmt.Sprintf("Length:   %d chars\n", len(posting.Description)))
	sb.WriteString("\n")

	lines := strings.Split(posting.Description, "\n")
	count := min(len(lines), descriptionPreviewLines)
	for i := 0; i < count; i++ {
		sb.WriteString(lines[i])
		sb.WriteString("\n")
	}
	if len(lines) > descriptionPreviewLines {
		sb.WriteString(fmt.Sprintf("... and %d more lines", len(lines)-descriptionPreviewLines))
	}

	p.printBox("EXTRACTED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoringOutcome outputs a one-box summary after a tailoring run.
func (p *Printer) PrintTailoringOutcome(jobTitle string, inputChars, outputChars int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role:  %s\n", jobTitle))
	sb.WriteString(fmt.Sprintf("Master:       %d chars\n", inputChars))
	sb.WriteString(fmt.Sprintf("Tailored:     %d chars", outputChars))
	p.printBox("TAILORED RESUME", sb.String())
}
