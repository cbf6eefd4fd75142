// Package jdstore loads the per-domain job descriptions from a directory of
// text files. The file name (without extension) is the domain name.
package jdstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store holds the job descriptions for all known domains. Domain order is
// sorted file order and stays fixed, so every analysis run iterates domains
// the same way.
type Store struct {
	domains []string
	texts   map[string]string
}

// Load reads every .txt file in dir into the store.
func Load(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description directory %s: %w", dir, err)
	}

	store := &Store{texts: make(map[string]string)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read job description %s: %w", entry.Name(), err)
		}

		domain := strings.TrimSuffix(entry.Name(), ".txt")
		store.domains = append(store.domains, domain)
		store.texts[domain] = string(content)
	}

	if len(store.domains) == 0 {
		return nil, fmt.Errorf("no job descriptions found in %s", dir)
	}
	sort.Strings(store.domains)
	return store, nil
}

// Domains lists the known domains in fixed order.
func (s *Store) Domains() []string {
	return s.domains
}

// Get returns the job description text for a domain.
func (s *Store) Get(domain string) (string, bool) {
	text, ok := s.texts[domain]
	return text, ok
}
