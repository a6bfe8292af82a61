package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kmorton/resume-tailor/internal/bridge"
	"github.com/kmorton/resume-tailor/internal/config"
)

var (
	dispatchServer     string
	dispatchConfigPath string
	dispatchJobURL     string
	dispatchTitle      string
	dispatchDesc       string
	dispatchOut        string
	dispatchWait       bool
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Send a generation request to a running tailor server",
	Long: `Sends a tailoring request to a remote server the way the browser
extension does, and stores the returned PDF. The session token is read from
the SESSION_TOKEN environment variable.`,
	RunE: runDispatch,
}

func init() {
	dispatchCmd.Flags().StringVarP(&dispatchServer, "server", "s", "http://localhost:8080", "Base URL of the tailor server")
	dispatchCmd.Flags().StringVar(&dispatchConfigPath, "config", "", "Path to JSON config file (bridge_origins adds token origins)")
	dispatchCmd.Flags().StringVarP(&dispatchJobURL, "job-url", "u", "", "Job posting URL")
	dispatchCmd.Flags().StringVar(&dispatchTitle, "title", "", "Job title hint, used when extraction is skipped")
	dispatchCmd.Flags().StringVar(&dispatchDesc, "description", "", "Job description hint, used when extraction is skipped")
	dispatchCmd.Flags().StringVarP(&dispatchOut, "out", "o", "resume.pdf", "Path to write the PDF")
	dispatchCmd.Flags().BoolVar(&dispatchWait, "wait", false, "Poll the server until it is ready before dispatching")

	rootCmd.AddCommand(dispatchCmd)
}

// envSessionSource serves the same token for every origin, mirroring how a
// CLI user authenticates compared to the cookie-based extension flow.
type envSessionSource struct{}

func (envSessionSource) Token(string) (string, error) {
	return os.Getenv("SESSION_TOKEN"), nil
}

func runDispatch(cmd *cobra.Command, _ []string) error {
	origins := []string{dispatchServer}
	if dispatchConfigPath != "" {
		cfg, err := config.LoadConfig(dispatchConfigPath)
		if err != nil {
			return err
		}
		origins = append(origins, cfg.BridgeOrigins...)
	}

	token, err := bridge.ResolveSession(envSessionSource{}, origins)
	if err != nil {
		return fmt.Errorf("no session token found; set SESSION_TOKEN: %w", err)
	}

	if dispatchWait {
		probe := func() bool {
			resp, err := http.Get(dispatchServer + "/health")
			if err != nil {
				return false
			}
			defer func() { _ = resp.Body.Close() }()
			return resp.StatusCode == http.StatusOK
		}
		if err := bridge.AwaitReady(cmd.Context(), probe, 2*time.Second); err != nil {
			return fmt.Errorf("server never became ready: %w", err)
		}
	}

	result, err := bridge.NewDispatcher(dispatchServer, token).Dispatch(cmd.Context(), bridge.GenerationRequest{
		JobURL:          dispatchJobURL,
		TitleHint:       dispatchTitle,
		DescriptionHint: dispatchDesc,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(dispatchOut, result.PDF, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Fprintf(os.Stderr, "PDF written to %s", dispatchOut)
	if result.RecordID != "" {
		fmt.Fprintf(os.Stderr, " (record %s)", result.RecordID)
	}
	fmt.Fprintln(os.Stderr)
	return nil
}
