// Package render turns a validated LaTeX resume into a PDF. The pipeline
// treats rendering as a boundary: it only needs to know that a render can
// fail in retryable (service busy, transient) and non-retryable (document
// too large, compiler missing) ways.
package render

import "context"

// Renderer produces a PDF from LaTeX source.
type Renderer interface {
	Render(ctx context.Context, latexSource string) ([]byte, error)
}

// Error is a rendering failure. Retryable failures are worth re-issuing;
// non-retryable ones need operator or user action.
type Error struct {
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return "render: " + e.Message + ": " + e.Cause.Error()
	}
	return "render: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fallback chains renderers: each is tried in order, and a retryable
// failure falls through to the next. A non-retryable failure stops the
// chain immediately since the document itself is the problem.
type Fallback struct {
	Renderers []Renderer
}

// Render tries each renderer until one succeeds.
func (f *Fallback) Render(ctx context.Context, latexSource string) ([]byte, error) {
	var lastErr error
	for _, r := range f.Renderers {
		pdf, err := r.Render(ctx, latexSource)
		if err == nil {
			return pdf, nil
		}
		lastErr = err
		if re, ok := err.(*Error); ok && !re.Retryable {
			return nil, err
		}
	}
	if lastErr == nil {
		lastErr = &Error{Message: "no renderers configured"}
	}
	return nil, lastErr
}
