package main

import (
	"fmt"

	"github.com/fwojciec/sitemd"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	sites, err := deps.Sites.FindSites(deps.Ctx, sitemd.SiteFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintf(deps.Stderr, "error: site %q not found. Use 'sitemd sites' to see available sites.\n", c.Name)
		return sitemd.Errorf(sitemd.ENOTFOUND, "site %q not found", c.Name)
	}

	site := sites[0]

	docs, err := deps.Documents.FindDocuments(deps.Ctx, sitemd.DocumentFilter{
		SiteID: &site.ID,
		SortBy: sitemd.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: site %q has no documents. Run 'sitemd convert' to populate it.\n", c.Name)
		return sitemd.Errorf(sitemd.ENOTFOUND, "site %q has no documents", c.Name)
	}

	if c.Full {
		for _, doc := range docs {
			fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n\n", doc.Title, doc.Content)
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents for %s (%d total):\n\n", c.Name, len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourcePath
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s -> %s\n", i+1, title, doc.SourcePath, doc.OutputPath)
	}

	return nil
}
