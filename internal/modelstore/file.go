package modelstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/classifier"
	"github.com/jonathan/resume-screener/internal/schemas"
)

const artifactExt = ".model.json"

// FileStore keeps one JSON artifact per domain under a models directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating the directory if
// needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("models directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create models directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads and validates the artifact for a domain.
func (s *FileStore) Load(_ context.Context, domain string) (*classifier.Model, error) {
	data, err := os.ReadFile(s.path(domain))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Domain: domain}
		}
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	return decodeArtifact(domain, data)
}

// Save validates and writes the artifact for the model's domain.
func (s *FileStore) Save(_ context.Context, model *classifier.Model) error {
	data, err := encodeArtifact(model)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(model.Domain), data, 0o644); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	return nil
}

// Domains lists stored domains in sorted order.
func (s *FileStore) Domains(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read models directory: %w", err)
	}

	var domains []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), artifactExt) {
			continue
		}
		domains = append(domains, strings.TrimSuffix(entry.Name(), artifactExt))
	}
	sort.Strings(domains)
	return domains, nil
}

func (s *FileStore) path(domain string) string {
	return filepath.Join(s.dir, domain+artifactExt)
}

// encodeArtifact serializes a model and checks it against the artifact
// schema before it is written anywhere.
func encodeArtifact(model *classifier.Model) ([]byte, error) {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model: %w", err)
	}
	if err := schemas.ValidateClassifierModel(data); err != nil {
		return nil, &ArtifactError{Domain: model.Domain, Message: "artifact failed schema validation", Cause: err}
	}
	return data, nil
}

// decodeArtifact validates raw artifact bytes and unmarshals them.
func decodeArtifact(domain string, data []byte) (*classifier.Model, error) {
	if err := schemas.ValidateClassifierModel(data); err != nil {
		return nil, &ArtifactError{Domain: domain, Message: "artifact failed schema validation", Cause: err}
	}

	var model classifier.Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, &ArtifactError{Domain: domain, Message: "artifact is not valid JSON", Cause: err}
	}
	return &model, nil
}
