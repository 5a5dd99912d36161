package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"leafcare/internal/advisor"
	"leafcare/internal/display"
	"leafcare/internal/format"
	"leafcare/internal/identify"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// writeReport prints how the plant was matched, then the analysis sheet.
func writeReport(w io.Writer, rep *advisor.Report) {
	switch {
	case !rep.Identified:
		fmt.Fprintln(w, "Plante non identifiée : conseils généraux.")
	case rep.Exact:
		fmt.Fprintf(w, "Identifiée : %s (correspondance exacte)\n", rep.EntryID)
	default:
		fmt.Fprintf(w, "Identifiée : %s (score %d)\n", rep.EntryID, rep.Score)
	}
	fmt.Fprintln(w, format.Analysis(format.ASCII, rep.Analysis))
	if rep.RecordID != "" {
		fmt.Fprintf(w, "Enregistré : %s\n", rep.RecordID)
	}
}

func writeDiagnosis(w io.Writer, rep *advisor.DiagnosisReport) {
	fmt.Fprintln(w, rep.Result.Diagnosis)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "État : %s\n", display.StatusWithCode(string(rep.Result.Status)))
	fmt.Fprintf(w, "Action requise : %s\n", format.BoolMark(rep.Result.ActionRequired))
	if rep.RecordID != "" {
		fmt.Fprintf(w, "Enregistré : %s\n", rep.RecordID)
	}
}

func writeCandidates(w io.Writer, title string, cands []identify.Candidate) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, format.Candidates(format.ASCII, cands))
}

func separator(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("─", 60))
}
