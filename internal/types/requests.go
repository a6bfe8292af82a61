// Package types provides request and response types for the tailoring API.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ExtractRequest asks the server to pull a job posting out of a URL.
type ExtractRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// TailorRequest asks the server to produce a tailored resume. Either a job
// URL (extracted server-side) or an already-extracted title/description pair
// must be supplied.
type TailorRequest struct {
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	Company        string `json:"company,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
}

// MasterResumeRequest replaces the caller's master resume.
type MasterResumeRequest struct {
	ResumeTex string `json:"resume_tex" validate:"required,min=1"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TailorRequest using the validator.
func (r *TailorRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MasterResumeRequest using the validator.
func (r *MasterResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
