package main

import (
	"fmt"

	"github.com/fwojciec/sitemd"
	"github.com/fwojciec/sitemd/consolidate"
	"github.com/fwojciec/sitemd/convert"
)

// Run executes the consolidate command.
func (c *ConsolidateCmd) Run(deps *Dependencies) error {
	config, err := deps.Configs.Load(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemd.ErrorMessage(err))
		return err
	}

	return runConsolidate(deps, config)
}

// runConsolidate drives one consolidation run. Shared by consolidate and
// process.
func runConsolidate(deps *Dependencies, config *sitemd.Config) error {
	consolidator := &consolidate.Consolidator{
		TokenCounter: deps.TokenCounter,
		Logger:       deps.Logger,
	}

	result, err := consolidator.Consolidate(deps.Ctx, config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error consolidating: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Consolidated %d files (%s, %s)\n",
		result.Files, convert.FormatBytes(result.Bytes), convert.FormatTokens(result.Tokens))
	if result.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, "  Skipped %d duplicate files\n", result.Duplicates)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", result.OutputPath)

	return nil
}
