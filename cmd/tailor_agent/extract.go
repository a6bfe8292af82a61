package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmorton/resume-tailor/internal/extract"
	"github.com/kmorton/resume-tailor/internal/observability"
)

var (
	extractURL        string
	extractChromePath string
	extractTimeout    int
	extractHeaded     bool
	extractVerbose    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a job posting from a URL",
	Long:  "Drives a headless browser to a job posting URL and prints the extracted title, company, and description as JSON.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "Job posting URL (required)")
	extractCmd.Flags().StringVar(&extractChromePath, "chrome-path", "", "Path to a Chrome/Chromium binary")
	extractCmd.Flags().IntVar(&extractTimeout, "timeout", 0, "Extraction timeout in seconds")
	extractCmd.Flags().BoolVar(&extractHeaded, "headed", false, "Run the browser with a visible window")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := extractCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	opts := extract.DefaultOptions()
	opts.ChromePath = extractChromePath
	opts.Headless = !extractHeaded
	opts.Verbose = extractVerbose
	if extractTimeout > 0 {
		opts.Timeout = time.Duration(extractTimeout) * time.Second
	}

	posting, err := extract.New(opts).Extract(cmd.Context(), extractURL)
	if err != nil {
		return err
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintJobPosting(posting)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(posting)
}
