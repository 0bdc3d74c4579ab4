// Package consolidate merges a converted markdown tree into one document
// with a metadata sidecar, for feeding whole sites to LLM tooling.
package consolidate

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitemd"
	"github.com/fwojciec/sitemd/bloom"
	sitemdfs "github.com/fwojciec/sitemd/fs"
)

// Bloom filter sizing for duplicate-content detection.
const (
	expectedFiles     = 10000
	falsePositiveRate = 0.01
)

// Consolidator merges markdown files into a single consolidated document.
type Consolidator struct {
	// TokenCounter, if set, adds per-file and total token counts to the
	// metadata sidecar.
	TokenCounter sitemd.TokenCounter

	Logger *slog.Logger
}

// Result holds the outcome of a consolidation run.
type Result struct {
	Files      int
	Duplicates int
	Bytes      int
	Tokens     int

	OutputPath   string
	MetadataPath string
}

// Metadata is the sidecar written next to the consolidated document.
type Metadata struct {
	GeneratedAt     time.Time   `json:"generated_at"`
	SourceDirectory string      `json:"source_directory"`
	TotalFiles      int         `json:"total_files"`
	TotalTokens     int         `json:"total_tokens,omitempty"`
	Files           []FileEntry `json:"files"`
}

// FileEntry describes one consolidated file in the metadata sidecar.
type FileEntry struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Size        int    `json:"size"`
	ContentHash string `json:"content_hash"`
	Tokens      int    `json:"tokens,omitempty"`
}

// Consolidate merges every markdown file under config.OutputDir into a
// single document at config.ConsolidatedOutput (OutputDir/consolidated.md
// when unset) and writes metadata.json next to it.
//
// Files follow the snapshot's sitemap.xml order when one exists; files not
// in the sitemap, or all files when there is no sitemap, sort
// lexicographically. Files whose cleaned content hash was already seen are
// skipped.
func (c *Consolidator) Consolidate(ctx context.Context, config *sitemd.Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	outputPath := config.ConsolidatedOutput
	if outputPath == "" {
		outputPath = filepath.Join(config.OutputDir, "consolidated.md")
	}
	metadataPath := filepath.Join(filepath.Dir(outputPath), "metadata.json")

	paths, err := collectMarkdown(config.OutputDir, outputPath, metadataPath)
	if err != nil {
		return nil, err
	}

	order, err := sitemdfs.ReadSitemapOrder(config.InputDir)
	if err != nil {
		return nil, err
	}
	applySitemapOrder(paths, order)

	seen := make(map[string]bool)
	filter := bloom.NewFilter(expectedFiles, falsePositiveRate)

	var content strings.Builder
	content.WriteString("# Consolidated Markdown Content\n\n")

	metadata := &Metadata{
		GeneratedAt:     time.Now(),
		SourceDirectory: config.InputDir,
		TotalFiles:      0,
		Files:           []FileEntry{},
	}
	result := &Result{
		OutputPath:   outputPath,
		MetadataPath: metadataPath,
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(filepath.Join(config.OutputDir, filepath.FromSlash(path)))
		if err != nil {
			logger.Warn("skipping file", "path", path, "error", err)
			continue
		}

		cleaned := CleanContent(string(raw))
		hash := fmt.Sprintf("%x", xxhash.Sum64String(cleaned))

		// Bloom filter pre-check, exact map confirms.
		if filter.Test(hash) && seen[hash] {
			logger.Debug("skipping duplicate content", "path", path)
			result.Duplicates++
			continue
		}
		filter.Add(hash)
		seen[hash] = true

		title := TitleFromPath(path)

		content.WriteString("## ")
		content.WriteString(title)
		content.WriteString("\n\n")
		content.WriteString(cleaned)
		content.WriteString("\n\n---\n\n")

		entry := FileEntry{
			Path:        path,
			Title:       title,
			Size:        len(raw),
			ContentHash: hash,
		}
		if c.TokenCounter != nil {
			if tokens, err := c.TokenCounter.CountTokens(ctx, cleaned); err == nil {
				entry.Tokens = tokens
				result.Tokens += tokens
			}
		}

		metadata.Files = append(metadata.Files, entry)
		result.Files++
		result.Bytes += len(cleaned)
	}

	metadata.TotalFiles = result.Files
	metadata.TotalTokens = result.Tokens

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(outputPath, []byte(content.String()), 0644); err != nil {
		return nil, err
	}

	raw, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(metadataPath, raw, 0644); err != nil {
		return nil, err
	}

	return result, nil
}

// collectMarkdown lists .md files under dir as sorted relative slash paths,
// excluding the consolidated document and sidecar themselves.
func collectMarkdown(dir, outputPath, metadataPath string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		if path == outputPath || path == metadataPath {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// applySitemapOrder reorders paths in place so files named by the sitemap
// come first, in sitemap order. The input must already be sorted; files the
// sitemap does not mention keep their lexicographic order at the end.
func applySitemapOrder(paths []string, order []string) {
	if len(order) == 0 {
		return
	}

	rank := make(map[string]int, len(order))
	for i, path := range order {
		if _, ok := rank[path]; !ok {
			rank[path] = i
		}
	}

	sort.SliceStable(paths, func(i, j int) bool {
		ri, iOK := rank[paths[i]]
		rj, jOK := rank[paths[j]]
		switch {
		case iOK && jOK:
			return ri < rj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return false
		}
	})
}

// CleanContent normalizes markdown pulled from the output tree: decodes
// entity artifacts left by conversion and collapses runs of blank lines.
func CleanContent(content string) string {
	content = strings.ReplaceAll(content, "&#x2019;", "'")
	content = strings.ReplaceAll(content, "&amp;", "&")

	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(content)
}

// TitleFromPath derives a section title from a file path:
// docs/getting-started.md → "Getting Started".
func TitleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
