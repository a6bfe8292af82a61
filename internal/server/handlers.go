package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/kmorton/resume-tailor/internal/db"
	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/kmorton/resume-tailor/internal/jobsite"
	"github.com/kmorton/resume-tailor/internal/server/middleware"
	"github.com/kmorton/resume-tailor/internal/types"
)

// faultResponse writes an error response carrying the machine-readable fault
// kind alongside the human-readable message.
func (s *Server) faultResponse(w http.ResponseWriter, err error) {
	kind := faults.KindOf(err)
	if kind == "" {
		kind = "internal_error"
	}
	message := err.Error()
	var fe *faults.Error
	if errors.As(err, &fe) {
		message = fe.Message
	}
	s.jsonResponse(w, HTTPStatus(err), types.ErrorResponse{
		Error:   string(kind),
		Message: message,
	})
}

func (s *Server) authedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.faultResponse(w, faults.Wrap(faults.KindAuthError, "not signed in", err))
		return uuid.Nil, false
	}
	return userID, true
}

// needsExtraction reports whether a tailoring request requires a browser
// extraction. Callers that already extracted in-page send the fields along
// with the URL; a usable supplied description makes the headless pass
// redundant.
func needsExtraction(req types.TailorRequest) bool {
	return req.JobURL != "" && len(req.JobDescription) < jobsite.MinDescriptionLength
}

// extractPosting runs a browser extraction under the concurrency bound.
func (s *Server) extractPosting(r *http.Request, rawURL string) (*jobsite.JobPosting, error) {
	ctx := r.Context()
	if err := s.browserSem.Acquire(ctx, 1); err != nil {
		return nil, faults.Wrap(faults.KindTimeout, "gave up waiting for a browser slot", err)
	}
	defer s.browserSem.Release(1)
	return s.extractor.Extract(ctx, rawURL)
}

// handleExtract extracts a job posting from a URL without tailoring anything.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.faultResponse(w, faults.Wrap(faults.KindInvalidInput, "request body is not valid JSON", err))
		return
	}
	if err := req.Validate(); err != nil {
		s.faultResponse(w, faults.Wrap(faults.KindInvalidInput, "a job posting URL is required", err))
		return
	}

	posting, err := s.extractPosting(r, req.URL)
	if err != nil {
		s.faultResponse(w, err)
		return
	}
	if s.verbose {
		log.Printf("[EXTRACT] %q at %s (%d chars)", posting.Title, posting.CompanyName, len(posting.Description))
	}
	s.jsonResponse(w, http.StatusOK, posting)
}

// handleTailor runs the whole pipeline: extract (when a URL is given and the
// caller did not supply the fields itself), tailor against the caller's
// master resume, persist, then compile to PDF. A failed
// compile is a partial success: the tailored LaTeX is already stored and the
// response carries its record ID.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.faultResponse(w, faults.Wrap(faults.KindInvalidInput, "request body is not valid JSON", err))
		return
	}
	if err := req.Validate(); err != nil {
		s.faultResponse(w, faults.Wrap(faults.KindInvalidInput, "invalid tailoring request", err))
		return
	}

	master, err := s.db.GetMasterResume(r.Context(), userID)
	if err != nil {
		s.faultResponse(w, err)
		return
	}
	if master == nil {
		s.faultResponse(w, faults.New(faults.KindInvalidMasterResume,
			"no master resume on file; upload one before tailoring"))
		return
	}

	company := req.Company
	jobTitle := req.JobTitle
	jobDescription := req.JobDescription
	sourceURL := req.JobURL

	if needsExtraction(req) {
		posting, err := s.extractPosting(r, req.JobURL)
		if err != nil {
			s.faultResponse(w, err)
			return
		}
		jobTitle = posting.Title
		jobDescription = posting.Description
		if company == "" {
			company = posting.CompanyName
		}
	}

	if len(jobDescription) < jobsite.MinDescriptionLength {
		s.faultResponse(w, faults.New(faults.KindInvalidInput,
			"a job description of at least "+strconv.Itoa(jobsite.MinDescriptionLength)+" characters is required"))
		return
	}

	tailored, err := s.tailor.Tailor(r.Context(), master.ResumeTex, jobTitle, jobDescription)
	if err != nil {
		s.faultResponse(w, err)
		return
	}

	recordID, err := s.db.AppendTailoredResume(r.Context(), db.TailoredResume{
		UserID:         userID,
		Company:        company,
		JobTitle:       jobTitle,
		JobDescription: jobDescription,
		SourceURL:      sourceURL,
		ResumeTex:      tailored,
	})
	if err != nil {
		s.faultResponse(w, err)
		return
	}

	pdf, err := s.renderer.Render(r.Context(), tailored)
	if err != nil {
		log.Printf("[RENDER] compile failed for record %s: %v", recordID, err)
		s.jsonResponse(w, http.StatusOK, types.TailorResponse{
			RecordID: recordID.String(),
			Error:    string(faults.KindPDFGenerationFailed),
			Message:  "PDF generation failed (your tailored resume was saved as " + recordID.String() + ")",
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("X-Record-Id", recordID.String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// handlePutMasterResume replaces the caller's master resume.
func (s *Server) handlePutMasterResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.MasterResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.faultResponse(w, faults.Wrap(faults.KindInvalidInput, "request body is not valid JSON", err))
		return
	}
	if err := req.Validate(); err != nil {
		s.faultResponse(w, faults.Wrap(faults.KindInvalidInput, "resume_tex is required", err))
		return
	}

	if err := s.db.ReplaceMasterResume(r.Context(), userID, req.ResumeTex); err != nil {
		s.faultResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGetMasterResume returns the caller's master resume.
func (s *Server) handleGetMasterResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	master, err := s.db.GetMasterResume(r.Context(), userID)
	if err != nil {
		s.faultResponse(w, err)
		return
	}
	if master == nil {
		s.jsonResponse(w, http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "no master resume on file",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, master)
}

// handleListTailored returns the caller's tailoring history, newest first.
func (s *Server) handleListTailored(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.faultResponse(w, faults.New(faults.KindInvalidInput, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	resumes, err := s.db.ListTailoredResumes(r.Context(), userID, limit)
	if err != nil {
		s.faultResponse(w, err)
		return
	}
	if resumes == nil {
		resumes = []db.TailoredResumeSummary{}
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleGetTailored returns one stored tailored resume, including its LaTeX.
func (s *Server) handleGetTailored(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.faultResponse(w, faults.Wrap(faults.KindInvalidInput, "invalid resume id", err))
		return
	}

	resume, err := s.db.GetTailoredResume(r.Context(), id)
	if err != nil {
		s.faultResponse(w, err)
		return
	}
	// A foreign record is indistinguishable from a missing one.
	if resume == nil || resume.UserID != userID {
		s.jsonResponse(w, http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "tailored resume not found",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}
