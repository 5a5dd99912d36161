package identify

import (
	"strings"

	"leafcare/internal/catalog"
)

// weights is one tier of the keyword scoring rules.
type weights struct {
	name         int // query and display name overlap
	commonType   int // query and the first overlapping common type overlap
	keyword      int // per keyword contained in the query
	exactKeyword int // query equals a keyword
	multiKeyword int // two or more keywords matched
}

var (
	nameWeights        = weights{name: 8, commonType: 6, keyword: 1, exactKeyword: 5, multiKeyword: 3}
	filenameWeights    = weights{name: 10, commonType: 8, keyword: 2, multiKeyword: 5}
	descriptionWeights = weights{name: 15, commonType: 12, keyword: 3}
)

const (
	// MinNameScore is the confidence floor of the name path.
	MinNameScore = 2
	// MinImageScore is the score at which the image path stops guessing.
	MinImageScore = 5
	// guessPool is how many top candidates a low-confidence image match picks from.
	guessPool = 3
)

// score applies w to an already-normalized query.
func score(e catalog.Entry, q string, w weights) int {
	if q == "" {
		return 0
	}
	s := 0
	if overlaps(q, catalog.Normalize(e.DisplayName)) {
		s += w.name
	}
	for _, t := range e.CommonTypes {
		if overlaps(q, catalog.Normalize(t)) {
			s += w.commonType
			break
		}
	}
	matched := 0
	for _, kw := range e.Keywords {
		kw = catalog.Normalize(kw)
		if kw == "" || !strings.Contains(q, kw) {
			continue
		}
		matched++
		s += w.keyword
		if q == kw {
			s += w.exactKeyword
		}
	}
	if matched >= 2 {
		s += w.multiKeyword
	}
	return s
}

// overlaps reports whether either string contains the other. Empty strings
// never overlap.
func overlaps(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// exactMatch reports whether q equals the entry's name or one of its types.
func exactMatch(e catalog.Entry, q string) bool {
	if catalog.Normalize(e.DisplayName) == q {
		return true
	}
	for _, t := range e.CommonTypes {
		if catalog.Normalize(t) == q {
			return true
		}
	}
	return false
}
