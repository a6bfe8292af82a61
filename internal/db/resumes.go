package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/kmorton/resume-tailor/internal/latex"
)

// ReplaceMasterResume stores resumeTex as the user's master resume,
// overwriting any previous one. The document is balance-checked first so a
// broken master never enters storage.
func (db *DB) ReplaceMasterResume(ctx context.Context, userID uuid.UUID, resumeTex string) error {
	if !latex.QuickValidate(resumeTex) {
		return faults.New(faults.KindInvalidMasterResume,
			"master resume has unbalanced braces or environments; fix the LaTeX source and re-upload")
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO master_resumes (user_id, resume_tex)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET resume_tex = $2, updated_at = NOW()`,
		userID, resumeTex,
	)
	if err != nil {
		return fmt.Errorf("failed to replace master resume: %w", err)
	}
	return nil
}

// GetMasterResume retrieves the user's master resume. Returns nil with no
// error when none has been uploaded.
func (db *DB) GetMasterResume(ctx context.Context, userID uuid.UUID) (*MasterResume, error) {
	var resume MasterResume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume_tex, updated_at
		 FROM master_resumes WHERE user_id = $1`,
		userID,
	).Scan(&resume.ID, &resume.UserID, &resume.ResumeTex, &resume.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get master resume: %w", err)
	}
	return &resume, nil
}

// AppendTailoredResume records a generated resume and returns its ID. The
// record survives even when the downstream PDF compile fails, so the caller
// can surface the ID as a partial-success handle.
func (db *DB) AppendTailoredResume(ctx context.Context, r TailoredResume) (uuid.UUID, error) {
	if strings.TrimSpace(r.ResumeTex) == "" {
		return uuid.Nil, faults.New(faults.KindInvalidInput, "tailored resume body is empty")
	}
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO tailored_resumes (user_id, company, job_title, job_description, source_url, resume_tex)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		r.UserID, r.Company, r.JobTitle, r.JobDescription, r.SourceURL, r.ResumeTex,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to append tailored resume: %w", err)
	}
	return id, nil
}

// GetTailoredResume retrieves one tailored resume by ID. Returns nil with no
// error when not found.
func (db *DB) GetTailoredResume(ctx context.Context, id uuid.UUID) (*TailoredResume, error) {
	var r TailoredResume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, company, job_title, COALESCE(job_description, ''),
		        COALESCE(source_url, ''), resume_tex, created_at
		 FROM tailored_resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.UserID, &r.Company, &r.JobTitle, &r.JobDescription,
		&r.SourceURL, &r.ResumeTex, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tailored resume: %w", err)
	}
	return &r, nil
}

// ListTailoredResumes retrieves a user's tailoring history, newest first
func (db *DB) ListTailoredResumes(ctx context.Context, userID uuid.UUID, limit int) ([]TailoredResumeSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, company, job_title, COALESCE(source_url, ''), created_at
		 FROM tailored_resumes WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tailored resumes: %w", err)
	}
	defer rows.Close()

	var resumes []TailoredResumeSummary
	for rows.Next() {
		var s TailoredResumeSummary
		if err := rows.Scan(&s.ID, &s.Company, &s.JobTitle, &s.SourceURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tailored resume: %w", err)
		}
		resumes = append(resumes, s)
	}
	return resumes, nil
}
