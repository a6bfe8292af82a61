// Package tailoring orchestrates resume tailoring: it combines a master
// resume and extracted job fields into a generative request under a strict
// content-fidelity contract, validates and repairs the response, and
// retries on unacceptable output.
package tailoring

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/kmorton/resume-tailor/internal/faults"
	"github.com/kmorton/resume-tailor/internal/latex"
	"github.com/kmorton/resume-tailor/internal/llm"
	"github.com/kmorton/resume-tailor/internal/prompts"
)

const (
	// MaxAttempts bounds the generate-then-validate sequence.
	MaxAttempts = 3
	// Temperature keeps output close to the source material; the fidelity
	// contract leaves little room for creativity anyway.
	Temperature = 0.3
)

// Orchestrator runs the tailoring sequence against a generative client.
type Orchestrator struct {
	client  llm.Client
	policy  Policy
	verbose bool
}

// New creates an Orchestrator with the default retry policy.
func New(client llm.Client) *Orchestrator {
	return &Orchestrator{client: client, policy: Policy{MaxAttempts: MaxAttempts}}
}

// WithVerbose enables per-attempt logging.
func (o *Orchestrator) WithVerbose(v bool) *Orchestrator {
	o.verbose = v
	return o
}

// Tailor produces a validated tailored resume document. The master resume
// must itself pass validation before any generative call is issued; an
// invalid master is a caller error, not a generation failure.
func (o *Orchestrator) Tailor(ctx context.Context, master, jobTitle, jobDescription string) (string, error) {
	master = strings.TrimSpace(master)
	jobTitle = strings.TrimSpace(jobTitle)
	jobDescription = strings.TrimSpace(jobDescription)
	if master == "" || jobTitle == "" || jobDescription == "" {
		return "", faults.New(faults.KindInvalidInput,
			"master resume, job title, and job description are all required")
	}

	if !latex.QuickValidate(master) {
		return "", faults.New(faults.KindInvalidMasterResume,
			"master resume is not a structurally valid LaTeX document")
	}

	system := prompts.MustGet("tailoring.json", "system")
	user := prompts.Format(prompts.MustGet("tailoring.json", "user"), map[string]string{
		"JobTitle":       jobTitle,
		"JobDescription": jobDescription,
		"MasterResume":   master,
	})

	state := State{}
	for o.policy.Decide(state) == DecisionContinue {
		attempt := state.Attempt + 1
		doc, err := o.generateOnce(ctx, system, user, master)
		if err != nil {
			if o.verbose {
				log.Printf("[TAILOR] attempt %d/%d failed: %v", attempt, o.policy.MaxAttempts, err)
			}
			state = state.Record(err)
			continue
		}
		if o.verbose {
			log.Printf("[TAILOR] attempt %d/%d produced a valid document (%d bytes)", attempt, o.policy.MaxAttempts, len(doc))
		}
		return doc, nil
	}

	return "", faults.Wrap(faults.KindGenerationFailed,
		fmt.Sprintf("could not produce valid output after %d attempts", o.policy.MaxAttempts),
		state.LastErr)
}

// generateOnce runs one generate-then-validate attempt. Invalid output gets
// one repair pass; a document still invalid after repair, or one that alters
// the master's dated entries, fails the attempt.
func (o *Orchestrator) generateOnce(ctx context.Context, system, user, master string) (string, error) {
	raw, err := o.client.GenerateContent(ctx, llm.Request{
		SystemInstruction: system,
		UserPrompt:        user,
		Temperature:       Temperature,
	})
	if err != nil {
		return "", faults.Wrap(faults.KindGenerationFailed, "generative service call failed", err)
	}

	doc := llm.CleanCodeFence(raw)
	if !latex.QuickValidate(doc) {
		doc = latex.Repair(doc)
		if !latex.QuickValidate(doc) {
			return "", faults.New(faults.KindInvalidGeneratedResume,
				"generated resume failed validation even after repair")
		}
	}

	if err := checkDateFidelity(master, doc); err != nil {
		return "", faults.Wrap(faults.KindInvalidGeneratedResume,
			"generated resume broke the content-fidelity contract", err)
	}

	return doc, nil
}
