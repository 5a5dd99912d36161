// Package analysis turns a matched catalog entry into a simulated plant
// analysis with a health status and care advice.
package analysis

import (
	"fmt"
	"strings"

	"leafcare/internal/catalog"
	"leafcare/internal/identify"
)

// Result is the analysis returned to callers.
type Result struct {
	PlantName        string         `json:"plantName"`
	Species          string         `json:"species"`
	Status           catalog.Status `json:"status"`
	HealthIssues     []string       `json:"healthIssues"`
	Recommendations  []string       `json:"recommendations"`
	CareInstructions catalog.Care   `json:"careInstructions"`
}

// Issue-contingent advice. Triggers are literal substrings of the symptom.
const (
	adviceWateringCheck = "Vérifiez la fréquence d'arrosage : laissez sécher le terreau en surface entre deux arrosages"
	adviceHumidity      = "Augmentez l'humidité ambiante en brumisant le feuillage ou en plaçant un humidificateur à proximité"
	adviceRotUrgent     = "Urgent : réduisez immédiatement l'arrosage et vérifiez que le pot draine correctement"
)

type trigger struct {
	phrases []string
	advice  string
}

var triggers = []trigger{
	{phrases: []string{"jaunissantes", "jaunes"}, advice: adviceWateringCheck},
	{phrases: []string{"brunes", "sèches"}, advice: adviceHumidity},
	{phrases: []string{"pourriture"}, advice: adviceRotUrgent},
}

var genericRecommendations = []string{
	"Arrosez modérément lorsque la surface du terreau est sèche",
	"Placez la plante dans un endroit lumineux sans soleil direct",
	"Observez régulièrement le feuillage pour repérer tout changement",
}

// Composer builds analyses. The random source picks the reported issue.
type Composer struct {
	rng identify.Rand
}

// NewComposer returns a Composer. A nil rng uses identify.DefaultRand.
func NewComposer(rng identify.Rand) *Composer {
	if rng == nil {
		rng = identify.DefaultRand()
	}
	return &Composer{rng: rng}
}

// Compose builds the analysis for e. The generic sentinel yields a fixed
// result; any other entry reports one randomly drawn issue, if it has any.
func (c *Composer) Compose(e catalog.Entry) *Result {
	if e.IsUnidentified() {
		return Generic()
	}

	r := &Result{
		PlantName:        e.DisplayName,
		Species:          e.Species(),
		Status:           catalog.Healthy,
		HealthIssues:     []string{},
		CareInstructions: e.Care,
	}
	r.Recommendations = append([]string{
		fmt.Sprintf("Arrosage : %s", e.Care.Watering),
		fmt.Sprintf("Exposition : %s", e.Care.Light),
	}, e.Care.AdditionalTips...)

	if len(e.Issues) == 0 {
		return r
	}

	is := e.Issues[c.rng.IntN(len(e.Issues))]
	r.HealthIssues = append(r.HealthIssues, fmt.Sprintf("Possible %s (%s)", is.Symptom, is.Cause))
	r.Status = escalate(r.Status, is.Severity)

	for _, t := range triggers {
		if containsAny(is.Symptom, t.phrases) {
			r.Recommendations = append(r.Recommendations, t.advice)
		}
	}
	return r
}

// Generic returns the canned analysis of an unidentified plant.
func Generic() *Result {
	u := catalog.Unidentified
	return &Result{
		PlantName:        u.DisplayName,
		Species:          u.Species(),
		Status:           catalog.Healthy,
		HealthIssues:     []string{},
		Recommendations:  append([]string(nil), genericRecommendations...),
		CareInstructions: u.Care,
	}
}

// escalate applies an issue severity to the current status. Danger always
// wins; warning only raises a healthy status.
func escalate(current, severity catalog.Status) catalog.Status {
	switch severity {
	case catalog.Danger:
		return catalog.Danger
	case catalog.Warning:
		if current == catalog.Healthy {
			return catalog.Warning
		}
	}
	return current
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
