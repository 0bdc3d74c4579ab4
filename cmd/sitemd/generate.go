package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/sitemd"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	output := c.Output
	if output == "" {
		output = filepath.Join(c.Dir, "site_config.yaml")
	}

	result, err := deps.Inferrer.InferConfig(deps.Ctx, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	if err := deps.Configs.Save(output, result.Config); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Analyzed %d pages (%d skipped)\n", result.Analyzed, result.Skipped)
	if result.Config.ContentSelector == "" {
		fmt.Fprintf(deps.Stderr, "warning: no content selector found; edit %s before converting\n", output)
	} else {
		fmt.Fprintf(deps.Stdout, "  Content selector: %s\n", result.Config.ContentSelector)
	}
	fmt.Fprintf(deps.Stdout, "  Exclude selectors: %d\n", len(result.Config.ExcludeSelectors))
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", output)

	return nil
}
