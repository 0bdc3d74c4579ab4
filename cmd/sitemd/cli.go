package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/sitemd"
	"github.com/fwojciec/sitemd/infer"
	"github.com/fwojciec/sitemd/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB        *sqlite.DB
	Sites     sitemd.SiteService
	Documents sitemd.DocumentService
	Configs   sitemd.ConfigStore

	Inferrer *infer.Inferrer

	Converter    sitemd.Converter
	Fallback     sitemd.Extractor
	TokenCounter sitemd.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Generate    GenerateCmd    `cmd:"" help:"Infer a conversion config from an HTML snapshot"`
	Convert     ConvertCmd     `cmd:"" help:"Convert an HTML snapshot to markdown using a config"`
	Consolidate ConsolidateCmd `cmd:"" help:"Merge converted markdown into one document"`
	Process     ProcessCmd     `cmd:"" help:"Generate, convert, and consolidate in one run"`
	Sites       SitesCmd       `cmd:"" help:"List registered sites"`
	Docs        DocsCmd        `cmd:"" help:"List documents for a site"`
	Delete      DeleteCmd      `cmd:"" help:"Delete a site and its documents"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Dir         string `arg:"" help:"Directory containing the HTML snapshot"`
	Output      string `short:"o" help:"Config output path (default: <dir>/site_config.yaml)"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent page analysis limit"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Config      string `arg:"" help:"Path to the conversion config"`
	Name        string `short:"n" help:"Site name for the catalog (default: input directory base name)"`
	Fallback    string `default:"trafilatura" enum:"trafilatura,readability,none" help:"Heuristic extractor tried when the content selector misses"`
	NoCatalog   bool   `help:"Skip recording documents in the catalog"`
	Tokens      bool   `short:"t" help:"Count output tokens"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent page conversion limit"`
}

// ConsolidateCmd is the "consolidate" subcommand.
type ConsolidateCmd struct {
	Config string `arg:"" help:"Path to the conversion config"`
	Tokens bool   `short:"t" help:"Count output tokens"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Dir         string `arg:"" help:"Directory containing the HTML snapshot"`
	Name        string `short:"n" help:"Site name for the catalog (default: directory base name)"`
	Fallback    string `default:"trafilatura" enum:"trafilatura,readability,none" help:"Heuristic extractor tried when the content selector misses"`
	NoCatalog   bool   `help:"Skip recording documents in the catalog"`
	Tokens      bool   `short:"t" help:"Count output tokens"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent page limit"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Name string `arg:"" help:"Site name"`
	Full bool   `help:"Show full document content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Site name"`
	Force bool   `help:"Confirm deletion"`
}
