package render

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Remote renders through an external compilation service. It is the
// fallback when no local LaTeX distribution is installed.
type Remote struct {
	client *resty.Client
}

// NewRemote creates a Remote renderer for the given service base URL.
func NewRemote(baseURL string) *Remote {
	return &Remote{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(60 * time.Second),
	}
}

// Render posts the document source and expects a PDF body back. Service
// unavailability is retryable; a payload-too-large rejection is not.
func (r *Remote) Render(ctx context.Context, latexSource string) ([]byte, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-tex").
		SetBody(latexSource).
		Post("/compile")
	if err != nil {
		return nil, &Error{Message: "render service unreachable", Retryable: true, Cause: err}
	}

	switch {
	case resp.StatusCode() == http.StatusRequestEntityTooLarge:
		return nil, &Error{Message: "document too large for the render service", Retryable: false}
	case resp.StatusCode() == http.StatusServiceUnavailable,
		resp.StatusCode() == http.StatusTooManyRequests:
		return nil, &Error{Message: "render service busy", Retryable: true}
	case resp.IsError():
		return nil, &Error{Message: "render service rejected the document", Retryable: false}
	}

	return resp.Body(), nil
}
