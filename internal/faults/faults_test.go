package faults

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	err := New(KindInvalidURL, "URL does not look like a job posting")
	assert.Equal(t, "invalid_url: URL does not look like a job posting", err.Error())
}

func TestError_WithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindNetworkError, "navigation failed", cause)

	assert.Contains(t, err.Error(), "network_error")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	err := New(KindDescriptionMissing, "unable to locate job description")
	assert.Equal(t, KindDescriptionMissing, KindOf(err))

	// Kind survives wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("extract: %w", err)
	assert.Equal(t, KindDescriptionMissing, KindOf(wrapped))

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestIsKind(t *testing.T) {
	err := Newf(KindGenerationFailed, "could not produce valid output after %d attempts", 3)
	require.True(t, IsKind(err, KindGenerationFailed))
	assert.False(t, IsKind(err, KindTimeout))
	assert.Contains(t, err.Error(), "after 3 attempts")
}
