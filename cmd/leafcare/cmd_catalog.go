package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leafcare/internal/catalog"
	"leafcare/internal/format"
)

var catalogFlags struct {
	markdown bool
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the plants the advisor recognises",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogFlags.markdown, "markdown", false, "Render a Markdown table")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	entries, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}
	mode := format.ASCII
	if catalogFlags.markdown {
		mode = format.Markdown
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.Catalog(mode, entries))
	return nil
}
