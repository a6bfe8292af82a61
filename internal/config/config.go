// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Paths
	ChromePath   string `json:"chrome_path,omitempty"`   // Browser binary override for extraction
	MasterResume string `json:"master_resume,omitempty"` // Path to master resume .tex file

	// Services
	APIKey           string `json:"api_key,omitempty"`            // Gemini API key
	Model            string `json:"model,omitempty"`              // Gemini model name
	DatabaseURL      string `json:"database_url,omitempty"`       // PostgreSQL connection URL
	RenderServiceURL string `json:"render_service_url,omitempty"` // Remote LaTeX compile service

	// Bridge
	BridgeOrigins []string `json:"bridge_origins,omitempty"` // Origins probed for session tokens

	// Behavior
	ExtractTimeoutSeconds int    `json:"extract_timeout_seconds,omitempty"` // Per-extraction browser budget
	MaxConcurrentBrowsers int    `json:"max_concurrent_browsers,omitempty"` // Simultaneous browser launches
	ListenAddr            string `json:"listen_addr,omitempty"`             // Server bind address
	Verbose               bool   `json:"verbose,omitempty"`                 // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills in values from environment variables. File values win;
// only empty fields are taken from the environment.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ChromePath == "" {
		c.ChromePath = os.Getenv("CHROME_PATH")
	}
	if c.RenderServiceURL == "" {
		c.RenderServiceURL = os.Getenv("RENDER_SERVICE_URL")
	}
}

// Validate checks that the configuration has valid values.
// Required fields are enforced later by the commands that need them.
func (c *Config) Validate() error {
	if c.ExtractTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'extract_timeout_seconds' must be non-negative")
	}
	if c.MaxConcurrentBrowsers < 0 {
		return fmt.Errorf("config error: 'max_concurrent_browsers' must be non-negative")
	}

	if c.MasterResume != "" {
		if _, err := os.Stat(c.MasterResume); os.IsNotExist(err) {
			return fmt.Errorf("config error: master resume file not found: %s", c.MasterResume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.MasterResume == "" {
		result.MasterResume = defaults.MasterResume
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RenderServiceURL == "" {
		result.RenderServiceURL = defaults.RenderServiceURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}

	if len(result.BridgeOrigins) == 0 {
		result.BridgeOrigins = defaults.BridgeOrigins
	}

	// Int fields: use default if zero
	if result.ExtractTimeoutSeconds == 0 {
		result.ExtractTimeoutSeconds = defaults.ExtractTimeoutSeconds
	}
	if result.MaxConcurrentBrowsers == 0 {
		result.MaxConcurrentBrowsers = defaults.MaxConcurrentBrowsers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
