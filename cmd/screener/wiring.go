package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-screener/internal/classifier"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/jdstore"
	"github.com/jonathan/resume-screener/internal/modelstore"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/semantic"
)

// openModelStore picks Postgres when a database URL is configured, otherwise
// the file store under cfg.ModelsDir.
func openModelStore(ctx context.Context, cfg config.Config) (modelstore.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		store, err := modelstore.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to model database: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("failed to migrate model database: %w", err)
		}
		return store, store.Close, nil
	}

	store, err := modelstore.NewFileStore(cfg.ModelsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open model store: %w", err)
	}
	return store, func() {}, nil
}

// buildAnalyzer wires the classifier provider, embedding provider and job
// description store into a ready-to-use analyzer. The returned cleanup
// function releases the model store and the embedding client.
func buildAnalyzer(ctx context.Context, cfg config.Config) (*pipeline.Analyzer, *jdstore.Store, func(), error) {
	jds, err := jdstore.Load(cfg.JDDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load job descriptions: %w", err)
	}

	store, closeStore, err := openModelStore(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	var classifiers classifier.Provider = modelstore.NewProvider(store)

	embedder := embedding.NewGeminiProvider(embedding.GeminiConfig{
		APIKey: cfg.APIKey,
		Model:  cfg.EmbeddingModel,
	})

	scorer := scoring.NewScorer(classifiers, semantic.NewEngine(embedder))
	analyzer := pipeline.NewAnalyzer(scorer, jds)

	cleanup := func() {
		_ = embedder.Close()
		closeStore()
	}
	return analyzer, jds, cleanup, nil
}
