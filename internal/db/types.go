package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account on the tailoring service
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MasterResume is a user's source-of-truth LaTeX resume
type MasterResume struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ResumeTex string    `json:"resume_tex"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TailoredResume is one generated resume, kept so a failed PDF compile can
// still be recovered later from the stored LaTeX.
type TailoredResume struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Company        string    `json:"company"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description,omitempty"`
	SourceURL      string    `json:"source_url,omitempty"`
	ResumeTex      string    `json:"resume_tex"`
	CreatedAt      time.Time `json:"created_at"`
}

// TailoredResumeSummary is a lightweight view for history listings
type TailoredResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	JobTitle  string    `json:"job_title"`
	SourceURL string    `json:"source_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
