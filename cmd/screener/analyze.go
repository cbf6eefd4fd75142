package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job domain",
	Long: `Scores a resume against the job description for a domain, reports missing skills and recommends better-fitting domains.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeResume      string
	analyzeDomain      string
	analyzeJDDir       string
	analyzeModelsDir   string
	analyzeAPIKey      string
	analyzeDatabaseURL string
	analyzeModel       string
	analyzeJSON        bool
	analyzeVerbose     bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.txt, .pdf, .docx, .html)")
	analyzeCommand.Flags().StringVarP(&analyzeDomain, "domain", "d", "", "Target job domain to score against")
	analyzeCommand.Flags().StringVar(&analyzeJDDir, "jd-dir", "", "Directory of <domain>.txt job descriptions")
	analyzeCommand.Flags().StringVar(&analyzeModelsDir, "models-dir", "", "Directory of classifier model artifacts")
	analyzeCommand.Flags().StringVar(&analyzeModel, "embedding-model", "", "Gemini embedding model name")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full analysis as JSON")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed analysis output")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for Postgres-backed model storage
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("domain") {
		cfg.Domain = analyzeDomain
	}
	if cmd.Flags().Changed("jd-dir") {
		cfg.JDDir = analyzeJDDir
	}
	if cmd.Flags().Changed("models-dir") {
		cfg.ModelsDir = analyzeModelsDir
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.EmbeddingModel = analyzeModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONOutput = analyzeJSON
	}

	// Step 3: Fill remaining gaps from environment and built-in defaults
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg.ApplyBuiltinDefaults()

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Domain == "" {
		return fmt.Errorf("--domain is required (via flag or config)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	resumeText, err := ingestion.LoadResume(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	analyzer, _, cleanup, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	analysis, err := analyzer.Analyze(ctx, resumeText, cfg.Domain)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintAnalysis(analysis)
		return nil
	}

	printer.PrintResult(analysis.Result)
	printer.PrintRecommendations(analysis.Recommendations, analysis.Result.Domain)
	return nil
}
