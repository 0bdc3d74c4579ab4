package main

import (
	"fmt"

	"github.com/fwojciec/sitemd"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitemd.Errorf(sitemd.EINVALID, "use --force to confirm deletion")
	}

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
	if err := deps.Sites.DeleteSite(deps.Ctx, site.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted site %q\n", site.Name)
	return nil
}
