package modelstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-screener/internal/classifier"
)

// PostgresStore keeps classifier artifacts in a PostgreSQL table, one row per
// domain.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Load reads and validates the artifact stored for a domain.
func (s *PostgresStore) Load(ctx context.Context, domain string) (*classifier.Model, error) {
	var artifact []byte
	err := s.pool.QueryRow(ctx,
		`SELECT artifact FROM classifier_models WHERE domain = $1`,
		domain,
	).Scan(&artifact)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &NotFoundError{Domain: domain}
		}
		return nil, fmt.Errorf("failed to load model for %s: %w", domain, err)
	}
	return decodeArtifact(domain, artifact)
}

// Save upserts the artifact for the model's domain.
func (s *PostgresStore) Save(ctx context.Context, model *classifier.Model) error {
	artifact, err := encodeArtifact(model)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO classifier_models (id, domain, artifact)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (domain) DO UPDATE SET artifact = $3, updated_at = NOW()`,
		uuid.New(), model.Domain, artifact,
	)
	if err != nil {
		return fmt.Errorf("failed to save model for %s: %w", model.Domain, err)
	}
	return nil
}

// Domains lists stored domains in sorted order.
func (s *PostgresStore) Domains(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT domain FROM classifier_models ORDER BY domain`)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	defer rows.Close()

	var domains []string
	for rows.Next() {
		var domain string
		if err := rows.Scan(&domain); err != nil {
			return nil, fmt.Errorf("failed to scan domain: %w", err)
		}
		domains = append(domains, domain)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate domains: %w", err)
	}
	return domains, nil
}

// Migrate creates the classifier_models table when it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS classifier_models (
			id UUID PRIMARY KEY,
			domain TEXT NOT NULL UNIQUE,
			artifact JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create classifier_models table: %w", err)
	}
	return nil
}
