// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Built-in defaults used when neither the config file, environment nor CLI
// flags provide a value.
const (
	DefaultJDDir     = "data/job_descriptions"
	DefaultModelsDir = "models"
	DefaultPort      = 8080
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	JDDir     string `json:"jd_dir,omitempty"`     // Directory of <domain>.txt job descriptions
	ModelsDir string `json:"models_dir,omitempty"` // Directory of classifier model artifacts
	Resume    string `json:"resume,omitempty"`     // Path to resume file to analyze

	// Analysis
	Domain string `json:"domain,omitempty"` // Target domain to score against

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Gemini embedding model name
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL for model storage
	Port           int    `json:"port,omitempty"`            // HTTP server port
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	JSONOutput     bool   `json:"json_output,omitempty"`     // Print analysis results as JSON
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

// FromEnv returns a Config populated from environment variables.
// Used as the lowest-priority default layer under config file and flags.
func FromEnv() Config {
	cfg := Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JDDir:       os.Getenv("SCREENER_JD_DIR"),
		ModelsDir:   os.Getenv("SCREENER_MODELS_DIR"),
	}
	if port, err := strconv.Atoi(os.Getenv("SCREENER_PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.JDDir != "" {
		if _, err := os.Stat(c.JDDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description directory not found: %s", c.JDDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JDDir == "" {
		result.JDDir = defaults.JDDir
	}
	if result.ModelsDir == "" {
		result.ModelsDir = defaults.ModelsDir
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Domain == "" {
		result.Domain = defaults.Domain
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyBuiltinDefaults fills any still-empty fields with built-in defaults.
func (c *Config) ApplyBuiltinDefaults() {
	if c.JDDir == "" {
		c.JDDir = DefaultJDDir
	}
	if c.ModelsDir == "" {
		c.ModelsDir = DefaultModelsDir
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}
