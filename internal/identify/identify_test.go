package identify

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"leafcare/internal/catalog"
	"leafcare/internal/logging"
)

func testCatalog() []catalog.Entry {
	return []catalog.Entry{
		{
			ID: "ficus", DisplayName: "Ficus",
			CommonTypes: []string{"Ficus lyrata"},
			Keywords:    []string{"caoutchouc", "feuilles brillantes"},
		},
		{
			ID: "monstera", DisplayName: "Monstera",
			CommonTypes: []string{"Monstera deliciosa"},
			Keywords:    []string{"tropical", "feuilles perforées", "grimpante"},
		},
		{
			ID: "cactus", DisplayName: "Cactus",
			CommonTypes: []string{"Opuntia"},
			Keywords:    []string{"épines", "désert", "sec"},
		},
	}
}

// stubRand returns a fixed index and records the bound it was asked for.
type stubRand struct {
	idx   int
	gotN  int
	calls int
}

func (s *stubRand) IntN(n int) int {
	s.gotN = n
	s.calls++
	return s.idx
}

func TestMatch(t *testing.T) {
	m := New(testCatalog(), &stubRand{})

	tests := []struct {
		name      string
		query     string
		wantID    string
		wantScore int
		wantExact bool
	}{
		{name: "exact display name", query: "Ficus", wantID: "ficus", wantExact: true},
		{name: "exact common type, case and space insensitive", query: "  MONSTERA DELICIOSA ", wantID: "monstera", wantExact: true},
		{name: "name contained in query", query: "mon monstera préféré", wantID: "monstera", wantScore: 8},
		{name: "query contained in type", query: "lyrata", wantID: "ficus", wantScore: 6},
		{name: "two keywords with bonus", query: "plante tropical grimpante", wantID: "monstera", wantScore: 5},
		{name: "query equals keyword", query: "caoutchouc", wantID: "ficus", wantScore: 6},
		{name: "single incidental keyword below floor", query: "terrain sec", wantID: catalog.UnidentifiedID},
		{name: "no overlap", query: "baobab", wantID: catalog.UnidentifiedID},
		{name: "blank", query: "   ", wantID: catalog.UnidentifiedID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.query)
			if got.Entry.ID != tt.wantID {
				t.Fatalf("Match(%q) = %q, want %q", tt.query, got.Entry.ID, tt.wantID)
			}
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Exact != tt.wantExact {
				t.Errorf("exact = %v, want %v", got.Exact, tt.wantExact)
			}
			if got.Identified() != (tt.wantID != catalog.UnidentifiedID) {
				t.Errorf("Identified() = %v", got.Identified())
			}
		})
	}
}

func TestMatch_ExactPassBeatsHigherScoringDecoy(t *testing.T) {
	entries := []catalog.Entry{
		{
			ID: "decoy", DisplayName: "Grand ficus tropical",
			CommonTypes: []string{"Ficus tropical"},
			Keywords:    []string{"ficus", "tropical"},
		},
		{ID: "plain", DisplayName: "Ficus", CommonTypes: []string{"Ficus lyrata"}},
	}
	m := New(entries, nil)

	if decoy := m.Candidates(Query{Text: "ficus", Source: SourceName})[0]; decoy.Entry.ID != "decoy" || decoy.Score != 20 {
		t.Fatalf("decoy should outscore the exact entry, got %s=%d", decoy.Entry.ID, decoy.Score)
	}
	for _, name := range []string{"Ficus", "ficus lyrata"} {
		if got := m.Match(name); got.Entry.ID != "plain" || !got.Exact {
			t.Errorf("Match(%q) = %q (exact=%v), want plain exact", name, got.Entry.ID, got.Exact)
		}
	}
}

func TestMatch_EveryNameAndTypeResolvesToItsEntry(t *testing.T) {
	entries := testCatalog()
	m := New(entries, nil)
	for _, e := range entries {
		for _, name := range append([]string{e.DisplayName}, e.CommonTypes...) {
			if got := m.Match(name); got.Entry.ID != e.ID {
				t.Errorf("Match(%q) = %q, want %q", name, got.Entry.ID, e.ID)
			}
		}
	}
}

func TestMatch_TiesKeepCatalogOrder(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "alpha", DisplayName: "Alpha", CommonTypes: []string{"A"}, Keywords: []string{"vert", "rond"}},
		{ID: "beta", DisplayName: "Beta", CommonTypes: []string{"B"}, Keywords: []string{"vert", "rond"}},
	}
	got := New(entries, nil).Match("vert et rond")
	if got.Entry.ID != "alpha" || got.Score != 5 {
		t.Errorf("got %s=%d, want alpha=5", got.Entry.ID, got.Score)
	}
}

func TestMatch_DuplicateIDsFirstOccurrenceWins(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "rosier", DisplayName: "Rosier", CommonTypes: []string{"Rosa"}, Keywords: []string{"fleurs", "parfum"}},
		{ID: "rosier", DisplayName: "Rose", CommonTypes: []string{"Rosa gallica"}, Keywords: []string{"fleurs", "parfum"}},
	}
	got := New(entries, nil).Match("fleurs au parfum")
	if got.Entry.DisplayName != "Rosier" {
		t.Errorf("got %q, want first occurrence Rosier", got.Entry.DisplayName)
	}
}

func TestMatch_CommonTypeCountedOnce(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "figuier", DisplayName: "Figuier", CommonTypes: []string{"ficus", "ficus lyrata"}},
	}
	got := New(entries, nil).Match("ficus lyrata en pot")
	if got.Score != 6 {
		t.Errorf("score = %d, want 6", got.Score)
	}
}

func TestMatch_EmptyCatalog(t *testing.T) {
	if got := New(nil, nil).Match("Ficus"); got.Identified() {
		t.Errorf("expected sentinel, got %q", got.Entry.ID)
	}
}

func TestMatchImage(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		description string
		wantID      string
		wantScore   int
	}{
		{name: "name in filename", filename: "monstera_deliciosa_01.jpg", wantID: "monstera", wantScore: 10},
		{name: "description keywords only", filename: "IMG_2041.jpg", description: "une plante tropical grimpante", wantID: "monstera", wantScore: 6},
		{name: "filename and description summed", filename: "ficus.png", description: "Ficus lyrata", wantID: "ficus", wantScore: 37},
		{name: "accentless filename matches a single keyword", filename: "desert-epines-sec.jpg", wantID: "cactus", wantScore: 2},
		{name: "two filename keywords earn the bonus", filename: "tropical_grimpante.jpg", wantID: "monstera", wantScore: 9},
		{name: "common type in filename", filename: "opuntia.jpg", wantID: "cactus", wantScore: 8},
		{name: "two description keywords earn no bonus", description: "tropical grimpante", wantID: "monstera", wantScore: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &stubRand{}
			got := New(testCatalog(), rng).MatchImage(tt.filename, tt.description)
			if got.Entry.ID != tt.wantID || got.Score != tt.wantScore {
				t.Errorf("MatchImage = %s=%d, want %s=%d", got.Entry.ID, got.Score, tt.wantID, tt.wantScore)
			}
			if got.Score >= MinImageScore && rng.calls != 0 {
				t.Errorf("confident match should not draw, got %d draws", rng.calls)
			}
		})
	}
}

func TestMatchImage_LogsDescriptionSource(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	logging.Init(slog.LevelDebug, "text", &buf)

	m := New(testCatalog(), &stubRand{})
	m.MatchImage("", "tropical grimpante")
	if out := buf.String(); !strings.Contains(out, "source=description") || strings.Contains(out, "source=filename") {
		t.Errorf("description-only match should be tagged source=description:\n%s", out)
	}

	buf.Reset()
	m.MatchImage("ficus.jpg", "tropical")
	if out := buf.String(); !strings.Contains(out, "source=filename") {
		t.Errorf("filename match should be tagged source=filename:\n%s", out)
	}
}

func TestMatchImage_LowConfidencePicksFromTopThree(t *testing.T) {
	entries := append(testCatalog(), catalog.Entry{ID: "fougere", DisplayName: "Fougère", CommonTypes: []string{"Nephrolepis"}})

	for idx, want := range []string{"ficus", "monstera", "cactus"} {
		rng := &stubRand{idx: idx}
		got := New(entries, rng).MatchImage("photo.jpg", "")
		if rng.gotN != 3 {
			t.Errorf("draw bound = %d, want 3", rng.gotN)
		}
		if got.Entry.ID != want {
			t.Errorf("draw %d picked %q, want %q", idx, got.Entry.ID, want)
		}
	}
}

func TestMatchImage_LowConfidencePoolIsRankedByScore(t *testing.T) {
	rng := &stubRand{idx: 0}
	got := New(testCatalog(), rng).MatchImage("sec.jpg", "")
	if got.Entry.ID != "cactus" || got.Score != 2 {
		t.Errorf("got %s=%d, want best partial match cactus=2", got.Entry.ID, got.Score)
	}
}

func TestMatchImage_SmallCatalogShrinksPool(t *testing.T) {
	rng := &stubRand{idx: 1}
	got := New(testCatalog()[:2], rng).MatchImage("photo.jpg", "")
	if rng.gotN != 2 || got.Entry.ID != "monstera" {
		t.Errorf("got %q with bound %d, want monstera with bound 2", got.Entry.ID, rng.gotN)
	}
}

func TestMatchImage_Sentinel(t *testing.T) {
	rng := &stubRand{}
	if got := New(testCatalog(), rng).MatchImage("  ", ""); got.Identified() {
		t.Errorf("blank input should yield sentinel, got %q", got.Entry.ID)
	}
	if got := New(nil, rng).MatchImage("ficus.jpg", "ficus"); got.Identified() {
		t.Errorf("empty catalog should yield sentinel, got %q", got.Entry.ID)
	}
	if rng.calls != 0 {
		t.Errorf("sentinel paths should not draw, got %d draws", rng.calls)
	}
}

func TestMatchImage_SeededSourceIsRepeatable(t *testing.T) {
	run := func() []string {
		m := New(testCatalog(), NewSeeded(42))
		var ids []string
		for i := 0; i < 10; i++ {
			ids = append(ids, m.MatchImage("photo.jpg", "").Entry.ID)
		}
		return ids
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("seeded runs differ (-first +second):\n%s", diff)
	}
}

func TestCandidates(t *testing.T) {
	m := New(testCatalog(), nil)

	type scored struct {
		ID    string
		Score int
	}
	flatten := func(cs []Candidate) []scored {
		out := make([]scored, len(cs))
		for i, c := range cs {
			out[i] = scored{c.Entry.ID, c.Score}
		}
		return out
	}

	tests := []struct {
		q    Query
		want []scored
	}{
		{
			q:    Query{Text: "plante tropical grimpante", Source: SourceName},
			want: []scored{{"monstera", 5}, {"ficus", 0}, {"cactus", 0}},
		},
		{
			q:    Query{Text: "plante tropical grimpante", Source: SourceDescription},
			want: []scored{{"monstera", 6}, {"ficus", 0}, {"cactus", 0}},
		},
		{
			q:    Query{Text: "cactus_desert.jpg", Source: SourceFilename},
			want: []scored{{"cactus", 10}, {"ficus", 0}, {"monstera", 0}},
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, flatten(m.Candidates(tt.q))); diff != "" {
			t.Errorf("Candidates(%+v) mismatch (-want +got):\n%s", tt.q, diff)
		}
	}
}
