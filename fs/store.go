package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitemd"
)

// Ensure Store implements sitemd.DocumentStore at compile time.
var _ sitemd.DocumentStore = (*Store)(nil)

// Store implements sitemd.DocumentStore with atomic update semantics.
// Documents are saved to a temporary directory, then moved atomically on
// Commit, so a failed conversion never leaves a half-written output tree.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store. baseDir is the parent directory, name is the
// output directory name. Files are saved to baseDir/name.tmp and moved to
// baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes a document to the pending output tree.
func (s *Store) Save(ctx context.Context, doc *sitemd.Document) error {
	outputPath := doc.OutputPath
	if outputPath == "" {
		outputPath = PathToMarkdown(doc.SourcePath)
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(outputPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}

// Commit atomically replaces the output directory with the pending tree.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the pending tree.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
