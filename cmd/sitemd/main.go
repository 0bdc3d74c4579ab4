package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitemd"
	"github.com/fwojciec/sitemd/fs"
	"github.com/fwojciec/sitemd/gemini"
	"github.com/fwojciec/sitemd/goquery"
	"github.com/fwojciec/sitemd/htmltomarkdown"
	"github.com/fwojciec/sitemd/infer"
	"github.com/fwojciec/sitemd/readability"
	sitemdslog "github.com/fwojciec/sitemd/slog"
	"github.com/fwojciec/sitemd/sqlite"
	"github.com/fwojciec/sitemd/trafilatura"
	"github.com/fwojciec/sitemd/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SiteService     sitemd.SiteService
	DocumentService sitemd.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitemd"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitemd --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEMD_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SiteService = sqlite.NewSiteService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Sites = m.SiteService
	deps.Documents = m.DocumentService
	deps.Configs = yaml.NewStore()

	// Wire command-specific dependencies
	if cmd == "generate" || cmd == "process" {
		concurrency := cli.Generate.Concurrency
		if cmd == "process" {
			concurrency = cli.Process.Concurrency
		}
		deps.Inferrer = &infer.Inferrer{
			Walker:      fs.NewWalker(0),
			Analyzer:    sitemdslog.NewLoggingPageAnalyzer(goquery.NewAnalyzer(sitemd.DefaultScoringConfig()), deps.Logger),
			Scoring:     sitemd.DefaultScoringConfig(),
			Concurrency: concurrency,
			Logger:      deps.Logger,
		}
	}

	if cmd == "convert" || cmd == "process" {
		deps.Converter = htmltomarkdown.NewConverter()

		fallback := cli.Convert.Fallback
		countTokens := cli.Convert.Tokens
		if cmd == "process" {
			fallback = cli.Process.Fallback
			countTokens = cli.Process.Tokens
		}
		switch fallback {
		case "trafilatura":
			deps.Fallback = trafilatura.NewExtractor()
		case "readability":
			deps.Fallback = readability.NewExtractor()
		}

		if countTokens {
			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			deps.TokenCounter = tokenCounter
		}
	}

	if cmd == "consolidate" && cli.Consolidate.Tokens {
		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.TokenCounter = tokenCounter
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.0-flash"

func defaultDBPath() string {
	if path := os.Getenv("SITEMD_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitemd.db"
	}
	dir := filepath.Join(home, ".sitemd")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitemd.db")
}
