package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"

	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/kmorton/resume-tailor/internal/types"
)

// newTestServer builds a Server without external services. Handlers under
// test here fail before ever touching the database, browser, or LLM.
func newTestServer() *Server {
	return &Server{
		browserSem: semaphore.NewWeighted(1),
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestFaultResponseCarriesKindAndMessage(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()
	s.faultResponse(w, faults.New(faults.KindDescriptionMissing, "unable to locate job description"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"description_missing"`)
	assert.Contains(t, w.Body.String(), "unable to locate job description")
}

func TestHandleExtractRejectsMalformedJSON(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(`{"url":`))
	w := httptest.NewRecorder()
	s.handleExtract(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_input")
}

func TestHandleExtractRejectsMissingURL(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	s.handleExtract(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_input")
}

func TestNeedsExtraction(t *testing.T) {
	longDescription := strings.Repeat("Own the billing pipeline. ", 10)
	tests := []struct {
		name string
		req  types.TailorRequest
		want bool
	}{
		{"url only", types.TailorRequest{JobURL: "https://www.linkedin.com/jobs/view/1"}, true},
		{"url with short description", types.TailorRequest{
			JobURL:         "https://www.linkedin.com/jobs/view/1",
			JobDescription: "short",
		}, true},
		{"url with supplied fields", types.TailorRequest{
			JobURL:         "https://www.linkedin.com/jobs/view/1",
			JobTitle:       "Backend Engineer",
			JobDescription: longDescription,
		}, false},
		{"fields without url", types.TailorRequest{
			JobTitle:       "Backend Engineer",
			JobDescription: longDescription,
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, needsExtraction(tt.req))
		})
	}
}

func TestHandleTailorRequiresAuthContext(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/tailor", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	s.handleTailor(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "auth_error")
}

func TestHandleGetTailoredRequiresAuthContext(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/resume/tailored/abc", nil)
	w := httptest.NewRecorder()
	s.handleGetTailored(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "auth_error")
}
