package format

import (
	"fmt"

	"leafcare/internal/analysis"
	"leafcare/internal/catalog"
	"leafcare/internal/display"
	"leafcare/internal/identify"
	"leafcare/internal/store"
)

// Catalog lists every entry with its types and keywords.
func Catalog(m Mode, entries []catalog.Entry) string {
	tb := NewTable(m)
	tb.Title("Catalogue des plantes")
	tb.Header("ID", "Nom", "Types", "Mots-clés", "Problèmes")
	for _, e := range entries {
		tb.Row(e.ID, e.DisplayName, List(e.CommonTypes), List(e.Keywords), len(e.Issues))
	}
	tb.Footer("", "", "", "Total", len(entries))
	tb.Columns(
		ColumnConfig{Number: 3, MaxWidth: 40},
		ColumnConfig{Number: 4, MaxWidth: 40},
		ColumnConfig{Number: 5, Align: AlignRight},
	)
	return tb.String()
}

// Candidates lists per-entry scores, highest first as given.
// Entries scoring zero are skipped.
func Candidates(m Mode, cands []identify.Candidate) string {
	tb := NewTable(m)
	tb.Title("Scores")
	tb.Header("#", "ID", "Nom", "Score")
	rank := 0
	for _, c := range cands {
		if c.Score == 0 {
			continue
		}
		rank++
		tb.Row(rank, c.Entry.ID, c.Entry.DisplayName, c.Score)
	}
	tb.Columns(
		ColumnConfig{Number: 1, Align: AlignRight},
		ColumnConfig{Number: 4, Align: AlignRight},
	)
	return tb.String()
}

// Analysis renders one analysis as a two-column sheet.
func Analysis(m Mode, r *analysis.Result) string {
	tb := NewTable(m)
	tb.Title(r.PlantName)
	tb.Header("Champ", "Valeur")
	tb.Row("Espèce", r.Species)
	tb.Row("État", display.Status(string(r.Status)))
	tb.Row("Arrosage", r.CareInstructions.Watering)
	tb.Row("Lumière", r.CareInstructions.Light)
	tb.Row("Température", r.CareInstructions.Temperature)
	for _, issue := range r.HealthIssues {
		tb.Row("Problème", issue)
	}
	for i, rec := range r.Recommendations {
		tb.Row(fmt.Sprintf("Conseil %d", i+1), rec)
	}
	tb.Columns(ColumnConfig{Number: 2, MaxWidth: 80})
	return tb.String()
}

// History lists stored records, in the order given.
func History(m Mode, recs []*store.Record) string {
	tb := NewTable(m)
	tb.Header("Date", "Type", "Plante", "État", "Requête", "ID")
	for _, r := range recs {
		tb.Row(
			Timestamp(r.CreatedAt),
			display.Kind(string(r.Kind)),
			r.PlantName,
			display.Status(string(r.Status)),
			Truncate(r.Query, 40),
			r.ID,
		)
	}
	return tb.String()
}
