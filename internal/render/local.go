package render

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompileTimeout is the maximum time to wait for a LaTeX compilation.
const CompileTimeout = 30 * time.Second

// Local compiles LaTeX with a system pdflatex installation.
type Local struct{}

// NewLocal creates a Local renderer.
func NewLocal() *Local { return &Local{} }

// Render compiles latexSource with pdflatex in a throwaway working
// directory. A missing pdflatex is retryable: the document is fine and
// another renderer in the chain (the remote service) can still compile it.
// A compile that produces no PDF is non-retryable, since reissuing the same
// document cannot help.
func (l *Local) Render(ctx context.Context, latexSource string) ([]byte, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &Error{
			Message:   "pdflatex not found in PATH; install a LaTeX distribution (e.g. TeX Live)",
			Retryable: true,
			Cause:     err,
		}
	}

	workDir, err := os.MkdirTemp("", "resume-render-*")
	if err != nil {
		return nil, &Error{Message: "failed to create working directory", Retryable: true, Cause: err}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(latexSource), 0644); err != nil {
		return nil, &Error{Message: "failed to write LaTeX file", Retryable: true, Cause: err}
	}

	cctx, cancel := context.WithTimeout(ctx, CompileTimeout)
	defer cancel()

	// nonstopmode prevents interactive prompts from hanging the compile.
	cmd := exec.CommandContext(cctx, "pdflatex",
		"-interaction=nonstopmode", "-output-directory", workDir, texPath)
	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output
	runErr := cmd.Run()

	pdfPath := filepath.Join(workDir, "resume.pdf")
	pdf, readErr := os.ReadFile(pdfPath)
	if readErr != nil {
		// LaTeX can exit non-zero and still produce a usable PDF; only a
		// missing PDF is a hard failure.
		return nil, &Error{
			Message:   "compilation produced no PDF",
			Retryable: false,
			Cause:     runErr,
		}
	}

	return pdf, nil
}
