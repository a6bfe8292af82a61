package bridge

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/tidwall/gjson"
)

// GenerationRequest asks the backend to tailor a resume for a resolved
// canonical job URL. Title and description hints let the backend skip its
// own extraction when the in-page extractor already succeeded; they travel
// under the same field names the tailoring endpoint reads.
type GenerationRequest struct {
	JobURL          string `json:"job_url,omitempty"`
	TitleHint       string `json:"job_title,omitempty"`
	DescriptionHint string `json:"job_description,omitempty"`
}

// GenerationResult is the normalized outcome of a generation call: a single
// binary-content representation regardless of which shape the backend chose.
type GenerationResult struct {
	PDF      []byte
	RecordID string
}

// Dispatcher sends generation requests to the backend tailoring endpoint.
type Dispatcher struct {
	client   *resty.Client
	endpoint string
}

// NewDispatcher creates a Dispatcher for the given backend base URL.
func NewDispatcher(baseURL, token string) *Dispatcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(2 * time.Minute)
	return &Dispatcher{client: client, endpoint: "/api/tailor"}
}

// Dispatch posts a generation request and normalizes the response. The
// backend may answer with a binary PDF body, a JSON payload carrying a
// download URL, or a JSON payload carrying base64 content; all three are
// reduced to GenerationResult.
func (d *Dispatcher) Dispatch(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(d.endpoint)
	if err != nil {
		return nil, faults.Wrap(faults.KindNetworkError, "tailoring request failed", err)
	}

	body := resp.Body()
	if resp.IsError() {
		return nil, backendError(resp.StatusCode(), body)
	}

	contentType := resp.Header().Get("Content-Type")
	if strings.HasPrefix(contentType, "application/pdf") {
		return &GenerationResult{
			PDF:      body,
			RecordID: resp.Header().Get("X-Record-Id"),
		}, nil
	}

	// JSON shapes. The backend is not guaranteed to send a strict struct,
	// so probe loosely.
	parsed := gjson.ParseBytes(body)
	recordID := parsed.Get("record_id").String()

	if downloadURL := parsed.Get("download_url").String(); downloadURL != "" {
		return d.download(ctx, downloadURL, recordID)
	}

	if content := parsed.Get("content").String(); content != "" {
		pdf, err := base64.StdEncoding.DecodeString(content)
		if err != nil {
			return nil, faults.Wrap(faults.KindPDFGenerationFailed,
				"backend returned unreadable document content", err)
		}
		return &GenerationResult{PDF: pdf, RecordID: recordID}, nil
	}

	// Partial success: the resume was stored but no document came back.
	if recordID != "" {
		message := SanitizeErrorText(parsed.Get("message").String())
		if message == "" {
			message = fmt.Sprintf("PDF generation failed (your tailored resume was saved as %s)", recordID)
		}
		return nil, faults.New(faults.KindPDFGenerationFailed, message)
	}

	return nil, faults.New(faults.KindPDFGenerationFailed,
		"backend response carried neither a document nor a download link")
}

// download fetches the document from a backend-provided URL.
func (d *Dispatcher) download(ctx context.Context, url, recordID string) (*GenerationResult, error) {
	resp, err := d.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, faults.Wrap(faults.KindNetworkError, "document download failed", err)
	}
	if resp.IsError() {
		return nil, backendError(resp.StatusCode(), resp.Body())
	}
	return &GenerationResult{PDF: resp.Body(), RecordID: recordID}, nil
}

// backendError turns a non-2xx backend response into a typed, sanitized
// failure. Error bodies may embed raw HTML from an intermediary failure
// page, so the text is cleaned before it can reach a user.
func backendError(status int, body []byte) error {
	kind := faults.KindPDFGenerationFailed
	if status == 401 || status == 403 {
		kind = faults.KindAuthError
	}

	message := gjson.GetBytes(body, "error").String()
	if message == "" {
		message = string(body)
	}
	message = SanitizeErrorText(message)
	if message == "" {
		message = fmt.Sprintf("backend returned status %d", status)
	}

	err := faults.New(kind, message)
	// Partial success: the resume may have been saved even though
	// rendering failed. Surface the record so the user is not told to
	// redo tailoring.
	if recordID := gjson.GetBytes(body, "record_id").String(); recordID != "" {
		err.Message = fmt.Sprintf("%s (your tailored resume was saved as %s)", err.Message, recordID)
	}
	return err
}
