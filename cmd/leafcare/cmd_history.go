package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leafcare/internal/format"
)

var historyFlags struct {
	markdown bool
	jsonOut  bool
}

var historyCmd = &cobra.Command{
	Use:   "history <plant>",
	Short: "Show recorded identifications and diagnoses for a plant",
	Long: `Show the recorded identifications and diagnoses for a plant, newest
first. Plant names are compared case-insensitively.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.BoolVar(&historyFlags.markdown, "markdown", false, "Render a Markdown table")
	f.BoolVar(&historyFlags.jsonOut, "json", false, "Print JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	plant := strings.Join(args, " ")

	app, err := openApp(true)
	if err != nil {
		return err
	}
	defer app.Close()

	recs, err := app.Service.History(cmd.Context(), plant)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyFlags.jsonOut {
		return writeJSON(out, recs)
	}
	if len(recs) == 0 {
		fmt.Fprintf(out, "Aucun enregistrement pour %q.\n", plant)
		return nil
	}
	mode := format.ASCII
	if historyFlags.markdown {
		mode = format.Markdown
	}
	fmt.Fprintln(out, format.History(mode, recs))
	return nil
}
