package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmorton/resume-tailor/internal/extract"
	"github.com/kmorton/resume-tailor/internal/llm"
	"github.com/kmorton/resume-tailor/internal/observability"
	"github.com/kmorton/resume-tailor/internal/render"
	"github.com/kmorton/resume-tailor/internal/tailoring"
)

var (
	tailorMaster      string
	tailorJobURL      string
	tailorTitle       string
	tailorDescription string
	tailorOut         string
	tailorPDFOut      string
	tailorModel       string
	tailorVerbose     bool
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a master resume to a job posting",
	Long: `Rewrites a master LaTeX resume to target a job posting. The posting comes
either from --job-url (extracted with a headless browser) or from --title
plus --description-file.`,
	RunE: runTailor,
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorMaster, "master", "m", "", "Path to master resume .tex file (required)")
	tailorCmd.Flags().StringVarP(&tailorJobURL, "job-url", "u", "", "Job posting URL to extract")
	tailorCmd.Flags().StringVar(&tailorTitle, "title", "", "Job title (with --description-file)")
	tailorCmd.Flags().StringVar(&tailorDescription, "description-file", "", "Path to a file holding the job description")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Path to output .tex file (required)")
	tailorCmd.Flags().StringVar(&tailorPDFOut, "pdf", "", "Also compile the result to this PDF path")
	tailorCmd.Flags().StringVar(&tailorModel, "model", "", "Gemini model name")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := tailorCmd.MarkFlagRequired("master"); err != nil {
		panic(fmt.Sprintf("failed to mark master flag as required: %v", err))
	}
	if err := tailorCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	master, err := os.ReadFile(tailorMaster)
	if err != nil {
		return fmt.Errorf("failed to read master resume: %w", err)
	}

	jobTitle := tailorTitle
	jobDescription := ""
	switch {
	case tailorJobURL != "":
		opts := extract.DefaultOptions()
		opts.Verbose = tailorVerbose
		posting, err := extract.New(opts).Extract(cmd.Context(), tailorJobURL)
		if err != nil {
			return err
		}
		jobTitle = posting.Title
		jobDescription = posting.Description
		if tailorVerbose {
			observability.NewPrinter(os.Stderr).PrintJobPosting(posting)
		} else {
			fmt.Fprintf(os.Stderr, "Extracted %q at %s\n", posting.Title, posting.CompanyName)
		}
	case tailorDescription != "":
		desc, err := os.ReadFile(tailorDescription)
		if err != nil {
			return fmt.Errorf("failed to read description file: %w", err)
		}
		jobDescription = string(desc)
	default:
		return fmt.Errorf("either --job-url or --description-file is required")
	}

	client, err := llm.NewGeminiClient(cmd.Context(), apiKey, tailorModel)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	start := time.Now()
	tailored, err := tailoring.New(client).WithVerbose(tailorVerbose).
		Tailor(cmd.Context(), string(master), jobTitle, jobDescription)
	if err != nil {
		return err
	}

	if err := os.WriteFile(tailorOut, []byte(tailored), 0644); err != nil {
		return fmt.Errorf("failed to write tailored resume: %w", err)
	}
	if tailorVerbose {
		observability.NewPrinter(os.Stderr).PrintTailoringOutcome(jobTitle, len(master), len(tailored))
	}
	fmt.Fprintf(os.Stderr, "Tailored resume written to %s in %v\n", tailorOut, time.Since(start).Round(time.Second))

	if tailorPDFOut != "" {
		pdf, err := render.NewLocal().Render(cmd.Context(), tailored)
		if err != nil {
			return fmt.Errorf("tailored resume saved, but PDF compilation failed: %w", err)
		}
		if err := os.WriteFile(tailorPDFOut, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Fprintf(os.Stderr, "PDF written to %s\n", tailorPDFOut)
	}

	return nil
}
