package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/sitemd/cmd/sitemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSnapshot creates a small HTML site snapshot for end-to-end tests.
func writeSnapshot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	page := func(title, body string) string {
		return `<!DOCTYPE html>
<html>
<head><title>` + title + `</title><meta name="description" content="test page"></head>
<body>
<nav class="navbar"><a href="/">Home</a></nav>
<main role="main">
<h1>` + title + `</h1>
<p>` + strings.Repeat(body+" ", 30) + `</p>
<ul><li>one</li><li>two</li></ul>
</main>
<footer class="site-footer">Footer text</footer>
</body>
</html>`
	}

	pages := map[string]string{
		"index.html":         page("Welcome", "This site explains everything about the product."),
		"guide.html":         page("User Guide", "The guide walks through setup and daily use."),
		"docs/api.html":      page("API Reference", "Every endpoint accepts and returns JSON documents."),
		"docs/advanced.html": page("Advanced Topics", "Tuning and scaling advice for large installs."),
	}
	for rel, content := range pages {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func runCLI(t *testing.T, m *main.Main, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_EndToEnd(t *testing.T) {
	t.Parallel()

	snapshot := writeSnapshot(t)
	dbPath := filepath.Join(t.TempDir(), "test.db")

	newMain := func() *main.Main {
		m := main.NewMain()
		m.DBPath = dbPath
		return m
	}

	t.Run("generate infers a config", func(t *testing.T) {
		stdout, _, err := runCLI(t, newMain(), "generate", snapshot)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Analyzed 4 pages")
		assert.Contains(t, stdout, `main[role="main"]`)

		configPath := filepath.Join(snapshot, "site_config.yaml")
		assert.FileExists(t, configPath)
	})

	t.Run("convert produces the markdown tree", func(t *testing.T) {
		configPath := filepath.Join(snapshot, "site_config.yaml")

		stdout, stderr, err := runCLI(t, newMain(), "convert", configPath, "--name", "testsite")

		require.NoError(t, err, "stderr: %s", stderr)
		assert.Contains(t, stdout, "Converted 4 pages")

		outputDir := filepath.Join(snapshot, "markdown_output")
		raw, err := os.ReadFile(filepath.Join(outputDir, "guide.md"))
		require.NoError(t, err)
		content := string(raw)
		assert.Contains(t, content, "# User Guide")
		assert.Contains(t, content, "source: guide.html")
		assert.NotContains(t, content, "Footer text", "boilerplate should be stripped")
		assert.FileExists(t, filepath.Join(outputDir, "docs", "api.md"))
	})

	t.Run("consolidate merges the tree", func(t *testing.T) {
		configPath := filepath.Join(snapshot, "site_config.yaml")

		stdout, stderr, err := runCLI(t, newMain(), "consolidate", configPath)

		require.NoError(t, err, "stderr: %s", stderr)
		assert.Contains(t, stdout, "Consolidated 4 files")

		outputDir := filepath.Join(snapshot, "markdown_output")
		raw, err := os.ReadFile(filepath.Join(outputDir, "consolidated.md"))
		require.NoError(t, err)
		assert.Contains(t, string(raw), "# Consolidated Markdown Content")
		assert.Contains(t, string(raw), "## Guide")
		assert.FileExists(t, filepath.Join(outputDir, "metadata.json"))
	})

	t.Run("sites lists the registered site", func(t *testing.T) {
		stdout, _, err := runCLI(t, newMain(), "sites")

		require.NoError(t, err)
		assert.Contains(t, stdout, "testsite")
		assert.Contains(t, stdout, snapshot)
	})

	t.Run("docs lists converted documents in position order", func(t *testing.T) {
		stdout, _, err := runCLI(t, newMain(), "docs", "testsite")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Documents for testsite (4 total)")
		assert.Contains(t, stdout, "User Guide")
		assert.Less(t,
			strings.Index(stdout, "docs/advanced.html"),
			strings.Index(stdout, "guide.html"),
			"documents should follow walk order",
		)
	})

	t.Run("reconverting replaces catalog documents", func(t *testing.T) {
		configPath := filepath.Join(snapshot, "site_config.yaml")

		_, stderr, err := runCLI(t, newMain(), "convert", configPath, "--name", "testsite")
		require.NoError(t, err, "stderr: %s", stderr)

		stdout, _, err := runCLI(t, newMain(), "docs", "testsite")
		require.NoError(t, err)
		assert.Contains(t, stdout, "(4 total)", "re-conversion should not duplicate documents")
	})

	t.Run("delete requires force", func(t *testing.T) {
		_, stderr, err := runCLI(t, newMain(), "delete", "testsite")

		require.Error(t, err)
		assert.Contains(t, stderr, "--force")
	})

	t.Run("delete removes the site", func(t *testing.T) {
		stdout, _, err := runCLI(t, newMain(), "delete", "testsite", "--force")

		require.NoError(t, err)
		assert.Contains(t, stdout, `Deleted site "testsite"`)

		stdout, _, err = runCLI(t, newMain(), "sites")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No sites found")
	})
}

func TestMain_Process(t *testing.T) {
	t.Parallel()

	snapshot := writeSnapshot(t)
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout, stderr, err := runCLI(t, m, "process", snapshot, "--name", "onesite")

	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Analyzed 4 pages")
	assert.Contains(t, stdout, "Converted 4 pages")
	assert.Contains(t, stdout, "Consolidated 4 files")

	assert.FileExists(t, filepath.Join(snapshot, "site_config.yaml"))
	assert.FileExists(t, filepath.Join(snapshot, "markdown_output", "index.md"))
	assert.FileExists(t, filepath.Join(snapshot, "markdown_output", "consolidated.md"))
	assert.FileExists(t, filepath.Join(snapshot, "markdown_output", "metadata.json"))
}

func TestMain_ConvertMissingConfig(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	_, stderr, err := runCLI(t, m, "convert", filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, stderr, "error:")
}
