package main

import (
	"fmt"

	"github.com/fwojciec/sitemd"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	sites, err := deps.Sites.FindSites(deps.Ctx, sitemd.SiteFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintln(deps.Stdout, "No sites found. Use 'sitemd convert' or 'sitemd process' to register one.")
		return nil
	}

	for _, s := range sites {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.ID, s.Name, s.InputDir)
	}

	return nil
}
