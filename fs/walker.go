// Package fs provides file-based discovery and storage for site snapshots.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitemd"
)

// Ensure Walker implements sitemd.PageWalker at compile time.
var _ sitemd.PageWalker = (*Walker)(nil)

// Walker discovers .html files under a snapshot root.
type Walker struct {
	// MaxDepth limits how many path components below root are visited.
	// Zero means no limit.
	MaxDepth int
}

// NewWalker creates a new Walker.
func NewWalker(maxDepth int) *Walker {
	return &Walker{MaxDepth: maxDepth}
}

// Walk returns the paths of every .html file under root, relative to root
// with forward slashes, in lexical order. A missing root yields an empty
// slice.
func (w *Walker) Walk(ctx context.Context, root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return []string{}, nil
	}

	paths := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".html" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if w.MaxDepth > 0 && strings.Count(rel, "/")+1 > w.MaxDepth {
			return nil
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
