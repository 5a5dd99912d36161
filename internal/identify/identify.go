// Package identify resolves free text (a typed plant name, an upload filename
// or a description) to a catalog entry using tiered keyword scoring.
package identify

import (
	"log/slog"
	"slices"

	"leafcare/internal/catalog"
	"leafcare/internal/logging"
)

// Source tags where a query's text came from.
type Source string

const (
	SourceName        Source = "name"
	SourceFilename    Source = "filename"
	SourceDescription Source = "description"
)

// Query is one piece of text to identify.
type Query struct {
	Text   string
	Source Source
}

// Candidate is an entry with the score it earned for a query.
type Candidate struct {
	Entry catalog.Entry
	Score int
}

// Match is the outcome of identification. Entry is catalog.Unidentified when
// nothing matched with enough confidence.
type Match struct {
	Entry catalog.Entry
	Score int
	Exact bool
}

// Identified reports whether a real catalog entry was selected.
func (m Match) Identified() bool { return !m.Entry.IsUnidentified() }

// Matcher scores queries against a read-only catalog. It holds no per-call
// state and is safe for concurrent use as long as its Rand is.
type Matcher struct {
	entries []catalog.Entry
	rng     Rand
	logger  *slog.Logger
}

// New returns a Matcher over entries. A nil rng uses DefaultRand.
func New(entries []catalog.Entry, rng Rand) *Matcher {
	if rng == nil {
		rng = DefaultRand()
	}
	return &Matcher{entries: entries, rng: rng, logger: logging.New("identify")}
}

// Match resolves a plant name. An exact name or type match wins outright;
// otherwise the best scored entry is returned if it reaches MinNameScore.
func (m *Matcher) Match(query string) Match {
	q := catalog.Normalize(query)
	if q == "" {
		m.logger.Debug("blank query", "source", SourceName)
		return unidentified()
	}

	for _, e := range m.entries {
		if exactMatch(e, q) {
			m.logger.Debug("exact match", "source", SourceName, "query", q, "entry", e.ID)
			return Match{Entry: e, Exact: true}
		}
	}

	best, bestScore := -1, 0
	for i, e := range m.entries {
		if s := score(e, q, nameWeights); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best < 0 || bestScore < MinNameScore {
		m.logger.Debug("no confident match", "source", SourceName, "query", q, "best_score", bestScore)
		return unidentified()
	}
	e := m.entries[best]
	m.logger.Debug("scored match", "source", SourceName, "query", q, "entry", e.ID, "score", bestScore)
	return Match{Entry: e, Score: bestScore}
}

// MatchImage resolves an uploaded image from its filename and an optional
// description. Scores from both are summed per entry. Below MinImageScore a
// plausible guess is drawn from the top candidates.
func (m *Matcher) MatchImage(filename, description string) Match {
	fn := catalog.Normalize(filename)
	desc := catalog.Normalize(description)
	src := SourceFilename
	if fn == "" {
		src = SourceDescription
	}
	if len(m.entries) == 0 || (fn == "" && desc == "") {
		m.logger.Debug("nothing to match", "source", src, "entries", len(m.entries))
		return unidentified()
	}

	ranked := make([]Candidate, len(m.entries))
	for i, e := range m.entries {
		ranked[i] = Candidate{Entry: e, Score: score(e, fn, filenameWeights) + score(e, desc, descriptionWeights)}
	}
	sortCandidates(ranked)

	top := ranked[0]
	if top.Score >= MinImageScore {
		m.logger.Debug("scored match", "source", src, "filename", fn, "entry", top.Entry.ID, "score", top.Score)
		return Match{Entry: top.Entry, Score: top.Score}
	}

	pool := ranked[:min(guessPool, len(ranked))]
	pick := pool[m.rng.IntN(len(pool))]
	m.logger.Debug("low confidence guess", "source", src, "filename", fn, "entry", pick.Entry.ID, "score", pick.Score, "pool", len(pool))
	return Match{Entry: pick.Entry, Score: pick.Score}
}

// Candidates scores every entry for q with the weights of q.Source, best
// first. Unknown sources use the name weights. The exact-match pass and the
// confidence floors are not applied.
func (m *Matcher) Candidates(q Query) []Candidate {
	w := nameWeights
	switch q.Source {
	case SourceFilename:
		w = filenameWeights
	case SourceDescription:
		w = descriptionWeights
	}
	text := catalog.Normalize(q.Text)
	out := make([]Candidate, len(m.entries))
	for i, e := range m.entries {
		out[i] = Candidate{Entry: e, Score: score(e, text, w)}
	}
	sortCandidates(out)
	return out
}

// sortCandidates orders by score descending, keeping catalog order on ties.
func sortCandidates(cs []Candidate) {
	slices.SortStableFunc(cs, func(a, b Candidate) int { return b.Score - a.Score })
}

func unidentified() Match {
	return Match{Entry: catalog.Unidentified}
}
