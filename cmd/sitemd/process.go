package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/sitemd"
)

// Run executes the process command: generate, convert, consolidate.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	configPath := filepath.Join(c.Dir, "site_config.yaml")

	result, err := deps.Inferrer.InferConfig(deps.Ctx, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	if result.Config.ContentSelector == "" {
		fmt.Fprintf(deps.Stderr, "error: no content selector found in %d pages\n", result.Analyzed)
		return sitemd.Errorf(sitemd.ENOTFOUND, "no content selector found")
	}

	if err := deps.Configs.Save(configPath, result.Config); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Analyzed %d pages (%d skipped)\n", result.Analyzed, result.Skipped)
	fmt.Fprintf(deps.Stdout, "  Content selector: %s\n", result.Config.ContentSelector)

	if err := runConvert(deps, result.Config, configPath, c.Name, c.NoCatalog, c.Concurrency); err != nil {
		return err
	}

	return runConsolidate(deps, result.Config)
}
