// Package catalog holds the static plant reference data the identification
// and analysis packages query against. Entries are loaded once and never
// mutated afterwards.
package catalog

import "strings"

// Status is a plant health level. It is used both as an issue severity and
// as the overall status of an analysis or diagnosis.
type Status string

const (
	Healthy Status = "healthy"
	Warning Status = "warning"
	Danger  Status = "danger"
)

// UnidentifiedID is the ID of the generic sentinel entry.
const UnidentifiedID = "unidentified"

// Care is the care sheet echoed into every analysis.
type Care struct {
	Watering       string   `yaml:"watering" json:"watering"`
	Light          string   `yaml:"light" json:"light"`
	Temperature    string   `yaml:"temperature" json:"temperature"`
	AdditionalTips []string `yaml:"additional_tips,omitempty" json:"additionalTips,omitempty"`
}

// Issue is one health problem an entry may exhibit.
type Issue struct {
	Symptom  string `yaml:"symptom" json:"symptom"`
	Cause    string `yaml:"cause" json:"cause"`
	Severity Status `yaml:"severity" json:"severity"`
}

// Entry is one plant record.
type Entry struct {
	ID          string   `yaml:"id" json:"id"`
	DisplayName string   `yaml:"name" json:"name"`
	CommonTypes []string `yaml:"types" json:"types"`
	Keywords    []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Care        Care     `yaml:"care" json:"care"`
	Issues      []Issue  `yaml:"issues,omitempty" json:"issues,omitempty"`
}

// Species returns the first common type, or the display name when the entry
// has none.
func (e Entry) Species() string {
	if len(e.CommonTypes) > 0 {
		return e.CommonTypes[0]
	}
	return e.DisplayName
}

// IsUnidentified reports whether e is the generic sentinel.
func (e Entry) IsUnidentified() bool {
	return e.ID == UnidentifiedID
}

// Unidentified is returned by the matchers when no entry is a confident
// match. Analysis renders it as a fixed generic result.
var Unidentified = Entry{
	ID:          UnidentifiedID,
	DisplayName: "Plante d'intérieur non identifiée",
	CommonTypes: []string{"Espèce inconnue"},
	Care: Care{
		Watering:    "Arrosage modéré lorsque la surface du terreau est sèche",
		Light:       "Lumière vive indirecte",
		Temperature: "18-24°C",
	},
}

// Normalize lower-cases and trims s. All matching is done on normalized text.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Find returns the first entry with the given ID.
func Find(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
