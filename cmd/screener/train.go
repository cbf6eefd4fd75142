package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/classifier"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/jdstore"
)

var trainCommand = &cobra.Command{
	Use:   "train",
	Short: "Train classifier models from job descriptions",
	Long: `Trains a match classifier for each job domain found in the job description directory and saves the model artifacts.

Each domain's job description serves as its positive class; the remaining domains form the negative class.`,
	RunE: runTrain,
}

var (
	trainConfigPath  string
	trainJDDir       string
	trainModelsDir   string
	trainDatabaseURL string
	trainDomain      string
	trainSamples     int
	trainSeed        int64
)

func init() {
	trainCommand.Flags().StringVar(&trainConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	trainCommand.Flags().StringVar(&trainJDDir, "jd-dir", "", "Directory of <domain>.txt job descriptions")
	trainCommand.Flags().StringVar(&trainModelsDir, "models-dir", "", "Directory to write model artifacts to")
	trainCommand.Flags().StringVar(&trainDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	trainCommand.Flags().StringVarP(&trainDomain, "domain", "d", "", "Train only this domain (default: all)")
	trainCommand.Flags().IntVar(&trainSamples, "samples", 0, "Synthetic samples per class")
	trainCommand.Flags().Int64Var(&trainSeed, "seed", 0, "Random seed for synthetic sampling")

	rootCmd.AddCommand(trainCommand)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if trainConfigPath != "" {
		loadedCfg, err := config.LoadConfig(trainConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("jd-dir") {
		cfg.JDDir = trainJDDir
	}
	if cmd.Flags().Changed("models-dir") {
		cfg.ModelsDir = trainModelsDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = trainDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg.ApplyBuiltinDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	jds, err := jdstore.Load(cfg.JDDir)
	if err != nil {
		return fmt.Errorf("failed to load job descriptions: %w", err)
	}

	store, closeStore, err := openModelStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	domains := jds.Domains()
	if trainDomain != "" {
		if _, ok := jds.Get(trainDomain); !ok {
			return fmt.Errorf("unknown domain %q", trainDomain)
		}
		domains = []string{trainDomain}
	}

	opts := classifier.DefaultTrainOptions()
	if cmd.Flags().Changed("samples") {
		opts.Samples = trainSamples
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = trainSeed
	}

	for _, domain := range domains {
		jdText, _ := jds.Get(domain)

		var otherJDs []string
		for _, other := range jds.Domains() {
			if other == domain {
				continue
			}
			if text, ok := jds.Get(other); ok {
				otherJDs = append(otherJDs, text)
			}
		}

		model, err := classifier.Train(domain, jdText, otherJDs, opts)
		if err != nil {
			return fmt.Errorf("failed to train %q: %w", domain, err)
		}

		if err := store.Save(ctx, model); err != nil {
			return fmt.Errorf("failed to save model for %q: %w", domain, err)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Trained %s\n", domain)
	}

	return nil
}
