package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/sitemd"
	"github.com/fwojciec/sitemd/convert"
	"github.com/fwojciec/sitemd/fs"
	"github.com/fwojciec/sitemd/goquery"
	sitemdslog "github.com/fwojciec/sitemd/slog"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	config, err := deps.Configs.Load(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	return runConvert(deps, config, c.Config, c.Name, c.NoCatalog, c.Concurrency)
}

// runConvert drives one conversion run. Shared by convert and process.
func runConvert(deps *Dependencies, config *sitemd.Config, configPath, name string, noCatalog bool, concurrency int) error {
	var siteID string
	var documents sitemd.DocumentService
	if !noCatalog {
		if name == "" {
			name = filepath.Base(config.InputDir)
		}
		id, err := registerSite(deps, name, config, configPath)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
			return err
		}
		siteID = id
		documents = deps.Documents
	}

	pipeline := &convert.Pipeline{
		Walker:       fs.NewWalker(config.MaxDepth),
		Extractor:    sitemdslog.NewLoggingExtractor(goquery.NewExtractor(config), deps.Logger),
		Fallback:     deps.Fallback,
		Converter:    deps.Converter,
		Store:        fs.NewStore(filepath.Dir(config.OutputDir), filepath.Base(config.OutputDir)),
		Documents:    documents,
		TokenCounter: deps.TokenCounter,
		Concurrency:  concurrency,
		Logger:       deps.Logger,
	}

	progress := func(event convert.ProgressEvent) {
		switch event.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := pipeline.ConvertSite(deps.Ctx, siteID, config, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error converting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Converted %d pages (%s, %s)\n",
		result.Saved, convert.FormatBytes(result.Bytes), convert.FormatTokens(result.Tokens))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  Skipped %d pages\n", result.Failed)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", config.OutputDir)

	return nil
}

// registerSite finds or creates the catalog entry for a site. Re-converting
// an existing site replaces its documents.
func registerSite(deps *Dependencies, name string, config *sitemd.Config, configPath string) (string, error) {
	existing, err := deps.Sites.FindSites(deps.Ctx, sitemd.SiteFilter{Name: &name})
	if err != nil {
		return "", err
	}

	if len(existing) > 0 {
		site := existing[0]
		if err := deps.Documents.DeleteDocumentsBySite(deps.Ctx, site.ID); err != nil {
			return "", err
		}
		return site.ID, nil
	}

	site := &sitemd.Site{
		Name:       name,
		InputDir:   config.InputDir,
		ConfigPath: configPath,
	}
	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		return "", err
	}

	fmt.Fprintf(deps.Stdout, "Registered site %q (%s)\n", name, site.ID)
	return site.ID, nil
}
