package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorton/resume-tailor/internal/faults"
)

func TestReplaceMasterResumeRejectsUnbalancedDocument(t *testing.T) {
	// The validation gate fires before any query, so no pool is needed.
	store := &DB{}
	err := store.ReplaceMasterResume(context.Background(), uuid.New(),
		`\documentclass{article}\begin{document}\section{Skills`)
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.KindInvalidMasterResume))
}

func TestAppendTailoredResumeRejectsEmptyBody(t *testing.T) {
	store := &DB{}
	_, err := store.AppendTailoredResume(context.Background(), TailoredResume{
		UserID:   uuid.New(),
		Company:  "TestCorp",
		JobTitle: "Engineer",
	})
	require.Error(t, err)
	assert.True(t, faults.IsKind(err, faults.KindInvalidInput))
}

func TestTailoredResumeType(t *testing.T) {
	r := TailoredResume{
		Company:  "TestCorp",
		JobTitle: "Engineer",
	}
	assert.Equal(t, "TestCorp", r.Company)
	assert.Equal(t, "Engineer", r.JobTitle)
	assert.True(t, r.CreatedAt.IsZero())
}
