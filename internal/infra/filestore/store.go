// Package filestore writes generated files next to their inputs.
package filestore

import (
	"fmt"
	"os"

	"github.com/runoshun/jiraplot/internal/domain"
)

// Ensure Store implements domain.FileStore.
var _ domain.FileStore = (*Store)(nil)

// Store writes files by replacing them as a whole.
// A reader never observes a half-written graph description.
type Store struct {
	perm os.FileMode
}

// New creates a Store writing world-readable files.
func New() *Store {
	return &Store{perm: 0o644}
}

// WriteFile replaces path with content.
func (s *Store) WriteFile(path string, content []byte) error {
	return writeAtomic(path, content, s.perm)
}

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
