// Package infer provides selector inference over a website snapshot.
// It runs a page analyzer over every HTML file under a directory, folds the
// per-page results into corpus-wide aggregates, and synthesizes a conversion
// config from them.
package infer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitemd"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds concurrent page analysis when unset.
const defaultConcurrency = 10

// Inferrer infers a conversion config from a directory of HTML pages.
type Inferrer struct {
	Walker      sitemd.PageWalker
	Analyzer    sitemd.PageAnalyzer
	Scoring     sitemd.ScoringConfig
	Concurrency int
	Logger      *slog.Logger
}

// Result holds the outcome of an inference run.
type Result struct {
	Config *sitemd.Config

	// Analyzed and Skipped count pages that contributed to the aggregates
	// and pages dropped because they could not be read or parsed.
	Analyzed int
	Skipped  int
}

// pageResult holds the per-page analysis outcome before folding.
type pageResult struct {
	position    int
	path        string
	candidates  []sitemd.SelectorCandidate
	boilerplate *sitemd.BoilerplateSet
	err         error
}

// InferConfig analyzes every .html file under inputDir and synthesizes a
// conversion config. Pages that fail to read or parse are logged and
// skipped; a missing or empty directory degenerates to a config with an
// empty content selector.
//
// Pages are analyzed concurrently but folded in walk order, so the emitted
// config is deterministic for a given corpus.
func (i *Inferrer) InferConfig(ctx context.Context, inputDir string) (*Result, error) {
	scoring := i.Scoring
	if scoring.MaxSelectors == 0 {
		scoring = sitemd.DefaultScoringConfig()
	}

	logger := i.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	paths, err := i.Walker.Walk(ctx, inputDir)
	if err != nil {
		return nil, err
	}

	concurrency := i.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]pageResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for position, path := range paths {
		g.Go(func() error {
			results[position] = i.analyzePage(gctx, inputDir, position, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Fold in walk order: max-reduce candidate scores, union boilerplate.
	candidates := NewCandidateSet()
	boilerplate := sitemd.NewBoilerplateSet()
	result := &Result{}

	for _, page := range results {
		if page.err != nil {
			logger.Warn("skipping page", "path", page.path, "error", page.err)
			result.Skipped++
			continue
		}
		candidates.AddAll(page.candidates)
		boilerplate.Union(page.boilerplate)
		result.Analyzed++
	}

	result.Config = synthesize(inputDir, scoring, candidates, boilerplate)
	return result, nil
}

// analyzePage reads and analyzes one page.
func (i *Inferrer) analyzePage(ctx context.Context, inputDir string, position int, path string) pageResult {
	result := pageResult{position: position, path: path}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	raw, err := os.ReadFile(filepath.Join(inputDir, path))
	if err != nil {
		result.err = err
		return result
	}

	html := string(raw)

	result.candidates, err = i.Analyzer.ScoreContainers(html)
	if err != nil {
		result.err = err
		return result
	}

	result.boilerplate, err = i.Analyzer.DetectBoilerplate(html)
	if err != nil {
		result.err = err
		return result
	}

	return result
}

// synthesize reduces the corpus aggregates to a conversion config.
func synthesize(inputDir string, scoring sitemd.ScoringConfig, candidates *CandidateSet, boilerplate *sitemd.BoilerplateSet) *sitemd.Config {
	top := candidates.Top(scoring.AcceptanceThreshold, scoring.MaxSelectors)

	selectors := make([]string, 0, len(top))
	for _, candidate := range top {
		selectors = append(selectors, candidate.Selector)
	}

	return &sitemd.Config{
		InputDir:         inputDir,
		OutputDir:        filepath.Join(inputDir, "markdown_output"),
		ContentSelector:  strings.Join(selectors, ", "),
		ExcludeSelectors: boilerplate.Selectors(),
		PreserveLinks:    true,
		PreserveImages:   true,
		MaxDepth:         3,
		Frontmatter: map[string]string{
			"title":       "title",
			"description": `meta[name="description"]`,
		},
	}
}
