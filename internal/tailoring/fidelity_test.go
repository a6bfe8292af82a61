package tailoring

import (
	"context"
	"testing"

	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTokens(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"bare years", "Acme Corp, 2019--2023", []string{"2019", "2023"}},
		{"month names", "Jan 2020 to September 2022", []string{"jan 2020", "september 2022"}},
		{"numeric month", "03/2021 until 11/2024", []string{"03/2021", "11/2024"}},
		{"normalized spacing", "May    2018", []string{"may 2018"}},
		{"duplicates collapse", "2020 and again 2020", []string{"2020"}},
		{"no dates", "balanced distributed systems", nil},
		{"embedded digits ignored", "served 10000 requests", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateTokens(tt.doc)
			assert.Len(t, got, len(tt.want))
			for _, token := range tt.want {
				assert.Contains(t, got, token)
			}
		})
	}
}

func TestCheckDateFidelity(t *testing.T) {
	master := `\item{Engineer, Acme, Jan 2019 -- 2023}`

	t.Run("same dates pass", func(t *testing.T) {
		tailored := `\item{Engineer at Acme (Jan 2019 -- 2023), led Go services}`
		assert.NoError(t, checkDateFidelity(master, tailored))
	})

	t.Run("reordered dates pass", func(t *testing.T) {
		tailored := `\item{2023: shipped. Started Jan 2019.}`
		assert.NoError(t, checkDateFidelity(master, tailored))
	})

	t.Run("dropped date fails", func(t *testing.T) {
		err := checkDateFidelity(master, `\item{Engineer, Acme, 2023}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dropped dates jan 2019")
	})

	t.Run("invented date fails", func(t *testing.T) {
		err := checkDateFidelity(master, `\item{Engineer, Acme, Jan 2019 -- 2023, promoted 2021}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invented dates 2021")
	})
}

func TestTailor_DateDriftConsumesAttempt(t *testing.T) {
	// A structurally valid document that loses a dated entry must be
	// rejected like any other bad attempt; a faithful retry succeeds.
	drifted := `\documentclass{article}
\begin{document}
\section{Experience}
\begin{itemize}
\item{Software Engineer, Acme Corp, 2021--2023}
\end{itemize}
\end{document}`
	client := &scriptedClient{responses: []string{drifted, validMaster}}
	o := New(client)

	doc, err := o.Tailor(context.Background(), validMaster, "Engineer", jobDescription)
	require.NoError(t, err)
	assert.Equal(t, validMaster, doc)
	assert.Equal(t, 2, client.calls)
}

func TestTailor_DateDriftExhaustsAttempts(t *testing.T) {
	drifted := `\documentclass{article}
\begin{document}
\item{Software Engineer, Acme Corp, 2019--2024}
\end{document}`
	client := &scriptedClient{responses: []string{drifted, drifted, drifted}}
	o := New(client)

	_, err := o.Tailor(context.Background(), validMaster, "Engineer", jobDescription)
	require.Error(t, err)
	assert.Equal(t, faults.KindGenerationFailed, faults.KindOf(err))

	var fe *faults.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, faults.KindInvalidGeneratedResume, faults.KindOf(fe.Cause))
	assert.Contains(t, fe.Cause.Error(), "invented dates 2024")
}
