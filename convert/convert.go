// Package convert provides conversion orchestration. It coordinates walking
// a website snapshot, extracting content, converting it to markdown, and
// writing the output tree.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitemd"
	"github.com/fwojciec/sitemd/fs"
	"golang.org/x/sync/errgroup"
)

// Pipeline orchestrates the conversion of a website snapshot to markdown.
type Pipeline struct {
	Walker    sitemd.PageWalker
	Extractor sitemd.Extractor

	// Fallback, if set, is tried when the primary extractor returns
	// ENOTFOUND for a page.
	Fallback sitemd.Extractor

	Converter sitemd.Converter
	Store     sitemd.DocumentStore

	// Documents, if set, records converted pages in the catalog.
	Documents sitemd.DocumentService

	// TokenCounter, if set, accumulates token counts in the result.
	TokenCounter sitemd.TokenCounter

	Concurrency int
	Logger      *slog.Logger
}

// Result holds the outcome of a conversion run.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
	Tokens int
}

// ProgressEvent reports progress during a conversion run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of converting a single page.
type pageResult struct {
	position int
	path     string
	title    string
	markdown string
	hash     string
	extra    map[string]string
	err      error
}

// ConvertSite converts every page under config.InputDir and writes the
// markdown tree atomically: either the whole output directory is replaced or
// the previous tree is left untouched. Pages that fail to extract or convert
// are counted and skipped. The progress callback, if provided, receives
// events as conversion proceeds.
func (p *Pipeline) ConvertSite(ctx context.Context, siteID string, config *sitemd.Config, progress ProgressFunc) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	paths, err := p.Walker.Walk(ctx, config.InputDir)
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", config.InputDir, err)
	}
	if len(paths) == 0 {
		return &Result{}, nil
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan pageResult, len(paths))

	var completed atomic.Int64
	total := len(paths)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for position, path := range paths {
			g.Go(func() error {
				resultCh <- p.convertPage(gctx, config, position, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]pageResult, len(paths))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Path:      result.path,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		if abortErr := p.Store.Abort(); abortErr != nil {
			logger.Warn("aborting pending output", "error", abortErr)
		}
		return nil, err
	}

	// Save in walk order so positions in the catalog follow the snapshot's
	// lexical page order.
	result := &Result{}
	convertedAt := time.Now().UTC()

	for _, page := range results {
		if page.err != nil {
			logger.Warn("skipping page", "path", page.path, "error", page.err)
			result.Failed++
			continue
		}

		doc := &sitemd.Document{
			SiteID:      siteID,
			SourcePath:  page.path,
			OutputPath:  fs.PathToMarkdown(page.path),
			Title:       page.title,
			Content:     page.markdown,
			ContentHash: page.hash,
			Position:    page.position,
			ConvertedAt: convertedAt,
			Frontmatter: page.extra,
		}

		if err := p.Store.Save(ctx, doc); err != nil {
			logger.Warn("saving page", "path", page.path, "error", err)
			result.Failed++
			continue
		}

		if p.Documents != nil {
			if err := p.Documents.CreateDocument(ctx, doc); err != nil {
				logger.Warn("cataloging page", "path", page.path, "error", err)
			}
		}

		result.Saved++
		result.Bytes += len(page.markdown)
		if p.TokenCounter != nil {
			if tokens, err := p.TokenCounter.CountTokens(ctx, page.markdown); err == nil {
				result.Tokens += tokens
			}
		}
	}

	// A run where nothing converted leaves the previous output tree in place.
	if result.Saved == 0 {
		if err := p.Store.Abort(); err != nil {
			logger.Warn("aborting pending output", "error", err)
		}
	} else if err := p.Store.Commit(); err != nil {
		return nil, fmt.Errorf("committing output: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

// convertPage reads, extracts, and converts a single page.
func (p *Pipeline) convertPage(ctx context.Context, config *sitemd.Config, position int, path string) pageResult {
	result := pageResult{position: position, path: path}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	raw, err := os.ReadFile(filepath.Join(config.InputDir, filepath.FromSlash(path)))
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := p.Extractor.Extract(string(raw))
	if err != nil {
		if sitemd.ErrorCode(err) == sitemd.ENOTFOUND && p.Fallback != nil {
			extracted, err = p.Fallback.Extract(string(raw))
		}
		if err != nil {
			result.err = err
			return result
		}
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	markdown = CleanMarkdown(markdown)

	result.title = extracted.Title
	result.markdown = markdown
	result.hash = ComputeHash(markdown)
	result.extra = extracted.Frontmatter

	return result
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
