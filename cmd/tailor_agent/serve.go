package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmorton/resume-tailor/internal/config"
	"github.com/kmorton/resume-tailor/internal/server"
)

var (
	serveAddr       string
	serveConfigPath string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for extracting job postings and tailoring resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}
	merged := cfg.MergeWithDefaults(config.Config{ListenAddr: ":8080"})

	if serveAddr != "" {
		merged.ListenAddr = serveAddr
	}

	if merged.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if merged.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	srv, err := server.New(cmd.Context(), server.Config{
		ListenAddr:            merged.ListenAddr,
		DatabaseURL:           merged.DatabaseURL,
		APIKey:                merged.APIKey,
		Model:                 merged.Model,
		ChromePath:            merged.ChromePath,
		RenderServiceURL:      merged.RenderServiceURL,
		ExtractTimeoutSeconds: merged.ExtractTimeoutSeconds,
		MaxConcurrentBrowsers: merged.MaxConcurrentBrowsers,
		Verbose:               merged.Verbose || serveVerbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
