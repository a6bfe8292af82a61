// Package main provides the entry point for the Resume Tailor CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor_agent",
	Short: "Resume Tailor HTTP API server and CLI",
	Long:  "Resume Tailor extracts job postings from the major job boards and rewrites a master LaTeX resume to match them, as a REST API or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
