package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"leafcare/internal/identify"
)

var identifyFlags struct {
	fromFile string
	parallel int
	explain  bool
	jsonOut  bool
}

var identifyCmd = &cobra.Command{
	Use:   "identify [name...]",
	Short: "Identify a plant from its name and print care advice",
	Long: `Identify a plant from a typed name. Arguments are joined into one query,
so "leafcare identify Monstera deliciosa" needs no quoting.

With --from-file, each non-empty line of the file is a separate query and
the queries run on --parallel workers.`,
	RunE: runIdentify,
}

func init() {
	f := identifyCmd.Flags()
	f.StringVar(&identifyFlags.fromFile, "from-file", "", "File with one plant name per line")
	f.IntVar(&identifyFlags.parallel, "parallel", 4, "Workers for --from-file")
	f.BoolVar(&identifyFlags.explain, "explain", false, "Show the per-plant scores behind the match")
	f.BoolVar(&identifyFlags.jsonOut, "json", false, "Print JSON")
}

func runIdentify(cmd *cobra.Command, args []string) error {
	queries, err := identifyQueries(args, identifyFlags.fromFile)
	if err != nil {
		return err
	}

	app, err := openApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	reports, err := app.Service.IdentifyAll(cmd.Context(), queries, identifyFlags.parallel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if identifyFlags.jsonOut {
		if identifyFlags.fromFile == "" {
			return writeJSON(out, reports[0])
		}
		return writeJSON(out, reports)
	}
	for i, rep := range reports {
		if i > 0 {
			separator(out)
		}
		if identifyFlags.explain {
			writeCandidates(out, fmt.Sprintf("Scores pour %q :", queries[i]),
				app.Service.Candidates(identify.Query{Text: queries[i], Source: identify.SourceName}))
		}
		writeReport(out, rep)
	}
	return nil
}

// identifyQueries returns either the joined arguments or the lines of path.
func identifyQueries(args []string, path string) ([]string, error) {
	if path != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("give plant names as arguments or --from-file, not both")
		}
		return readLines(path)
	}
	q := strings.TrimSpace(strings.Join(args, " "))
	if q == "" {
		return nil, fmt.Errorf("plant name is required\n\nUsage: leafcare identify <name>")
	}
	return []string{q}, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: no plant names", path)
	}
	return lines, nil
}

