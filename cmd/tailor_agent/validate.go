package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmorton/resume-tailor/internal/latex"
)

var (
	validateInput  string
	validateRepair bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a LaTeX resume for balance problems",
	Long:  "Checks a LaTeX file for unbalanced braces and unclosed environments. With --repair, writes a repaired copy back in place when the check fails.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to LaTeX file (required)")
	validateCmd.Flags().BoolVar(&validateRepair, "repair", false, "Attempt to repair an unbalanced file in place")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read LaTeX file: %w", err)
	}

	doc := string(content)
	if latex.QuickValidate(doc) {
		fmt.Fprintln(os.Stdout, "Validation passed: braces and environments are balanced")
		return nil
	}

	if !validateRepair {
		return fmt.Errorf("validation failed: %s has unbalanced braces or environments", validateInput)
	}

	repaired := latex.Repair(doc)
	if !latex.QuickValidate(repaired) {
		return fmt.Errorf("repair did not produce a balanced document; fix %s by hand", validateInput)
	}

	if err := os.WriteFile(validateInput, []byte(repaired), 0644); err != nil {
		return fmt.Errorf("failed to write repaired file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Repaired %s\n", validateInput)
	return nil
}
