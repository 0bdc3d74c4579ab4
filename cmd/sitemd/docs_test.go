package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/sitemd"
	main "github.com/fwojciec/sitemd/cmd/sitemd"
	"github.com/fwojciec/sitemd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	testSite := &sitemd.Site{ID: "site-1", Name: "react-docs", InputDir: "/snapshots/react"}

	siteService := func() *mock.SiteService {
		return &mock.SiteService{
			FindSitesFn: func(_ context.Context, filter sitemd.SiteFilter) ([]*sitemd.Site, error) {
				if filter.Name != nil && *filter.Name == testSite.Name {
					return []*sitemd.Site{testSite}, nil
				}
				return nil, nil
			},
		}
	}

	t.Run("lists documents in position order", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter sitemd.DocumentFilter) ([]*sitemd.Document, error) {
				require.NotNil(t, filter.SiteID)
				assert.Equal(t, testSite.ID, *filter.SiteID)
				assert.Equal(t, sitemd.SortByPosition, filter.SortBy)
				return []*sitemd.Document{
					{Title: "Introduction", SourcePath: "index.html", OutputPath: "index.md", Position: 0},
					{Title: "Hooks", SourcePath: "hooks.html", OutputPath: "hooks.md", Position: 1},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Sites:     siteService(),
			Documents: documents,
		}

		err := (&main.DocsCmd{Name: "react-docs"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Documents for react-docs (2 total):")
		assert.Contains(t, output, "1. Introduction")
		assert.Contains(t, output, "index.html -> index.md")
		assert.Contains(t, output, "2. Hooks")
	})

	t.Run("full flag prints document content", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ sitemd.DocumentFilter) ([]*sitemd.Document, error) {
				return []*sitemd.Document{
					{Title: "Introduction", Content: "React is a library."},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Sites:     siteService(),
			Documents: documents,
		}

		err := (&main.DocsCmd{Name: "react-docs", Full: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Introduction")
		assert.Contains(t, stdout.String(), "React is a library.")
	})

	t.Run("returns ENOTFOUND for unknown site", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Sites:  siteService(),
		}

		err := (&main.DocsCmd{Name: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitemd.ENOTFOUND, sitemd.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})

	t.Run("returns ENOTFOUND for site with no documents", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ sitemd.DocumentFilter) ([]*sitemd.Document, error) {
				return nil, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Sites:     siteService(),
			Documents: documents,
		}

		err := (&main.DocsCmd{Name: "react-docs"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitemd.ENOTFOUND, sitemd.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no documents")
	})
}
