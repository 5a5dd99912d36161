// Package diagnose builds a plant diagnosis from a symptom questionnaire.
// It is a pure rule engine with no randomness or I/O.
package diagnose

import (
	"fmt"
	"strings"

	"leafcare/internal/catalog"
)

// Watering is how long ago the plant was last watered.
type Watering string

const (
	WateredToday        Watering = "today"
	WateredYesterday    Watering = "yesterday"
	WateredFewDays      Watering = "few_days"
	WateredWeek         Watering = "week"
	WateredMoreThanWeek Watering = "more_than_week"
	WateredUnknown      Watering = "dont_remember"
)

// Temperature is the temperature band the plant lives in.
type Temperature string

const (
	VeryCold    Temperature = "very_cold"
	Cold        Temperature = "cold"
	Cool        Temperature = "cool"
	Normal      Temperature = "normal"
	Warm        Temperature = "warm"
	Hot         Temperature = "hot"
	Fluctuating Temperature = "fluctuating"
)

// Environment flags are independent; several may be set at once.
type Environment struct {
	DirectSunlight bool `json:"directSunlight" yaml:"directSunlight"`
	BrightIndirect bool `json:"brightIndirect" yaml:"brightIndirect"`
	LowLight       bool `json:"lowLight" yaml:"lowLight"`
}

// Symptoms observed on the plant.
type Symptoms struct {
	YellowLeaves   bool `json:"yellowLeaves" yaml:"yellowLeaves"`
	BrownSpots     bool `json:"brownSpots" yaml:"brownSpots"`
	DroppingLeaves bool `json:"droppingLeaves" yaml:"droppingLeaves"`
	DryLeaves      bool `json:"dryLeaves" yaml:"dryLeaves"`
	MoldOrFungus   bool `json:"moldOrFungus" yaml:"moldOrFungus"`
	Insects        bool `json:"insects" yaml:"insects"`
	SlowGrowth     bool `json:"slowGrowth" yaml:"slowGrowth"`
	RootIssues     bool `json:"rootIssues" yaml:"rootIssues"`
}

// Count returns how many symptoms are set.
func (s Symptoms) Count() int {
	n := 0
	for _, set := range []bool{
		s.YellowLeaves, s.BrownSpots, s.DroppingLeaves, s.DryLeaves,
		s.MoldOrFungus, s.Insects, s.SlowGrowth, s.RootIssues,
	} {
		if set {
			n++
		}
	}
	return n
}

// SymptomNames are the snake_case symptom codes accepted by ParseSymptoms,
// in questionnaire order.
var SymptomNames = []string{
	"yellow_leaves", "brown_spots", "dropping_leaves", "dry_leaves",
	"mold_or_fungus", "insects", "slow_growth", "root_issues",
}

// ParseSymptoms sets one symptom per code. Codes are case-insensitive and
// may repeat; an unknown code is an error.
func ParseSymptoms(codes []string) (Symptoms, error) {
	var s Symptoms
	for _, code := range codes {
		switch strings.ToLower(strings.TrimSpace(code)) {
		case "yellow_leaves":
			s.YellowLeaves = true
		case "brown_spots":
			s.BrownSpots = true
		case "dropping_leaves":
			s.DroppingLeaves = true
		case "dry_leaves":
			s.DryLeaves = true
		case "mold_or_fungus":
			s.MoldOrFungus = true
		case "insects":
			s.Insects = true
		case "slow_growth":
			s.SlowGrowth = true
		case "root_issues":
			s.RootIssues = true
		default:
			return Symptoms{}, fmt.Errorf("unknown symptom %q (want one of %s)", code, strings.Join(SymptomNames, ", "))
		}
	}
	return s, nil
}

// Input is a filled questionnaire. AdditionalNotes is kept for callers but
// does not influence the diagnosis.
type Input struct {
	PlantName       string      `json:"plantName" yaml:"plantName"`
	PlantSpecies    string      `json:"plantSpecies,omitempty" yaml:"plantSpecies,omitempty"`
	LastWatering    Watering    `json:"lastWatering" yaml:"lastWatering"`
	Environment     Environment `json:"environment" yaml:"environment"`
	Temperature     Temperature `json:"temperature" yaml:"temperature"`
	Symptoms        Symptoms    `json:"symptoms" yaml:"symptoms"`
	AdditionalNotes string      `json:"additionalNotes,omitempty" yaml:"additionalNotes,omitempty"`
}

// SymptomCount returns the number of symptoms set on the questionnaire.
func (in Input) SymptomCount() int { return in.Symptoms.Count() }

// Result is the diagnosis returned to callers.
type Result struct {
	Diagnosis      string         `json:"diagnosis"`
	Status         catalog.Status `json:"status"`
	ActionRequired bool           `json:"actionRequired"`
}

func (in Input) wateredRecently() bool {
	return in.LastWatering == WateredToday || in.LastWatering == WateredYesterday
}

func (in Input) wateredLongAgo() bool {
	return in.LastWatering == WateredWeek || in.LastWatering == WateredMoreThanWeek
}

// overwatered is the recent-watering pattern with yellow, dropping leaves.
func (in Input) overwatered() bool {
	return in.wateredRecently() && in.Symptoms.YellowLeaves && in.Symptoms.DroppingLeaves
}

// underwatered is the old-watering pattern with dry or dropping leaves.
func (in Input) underwatered() bool {
	return in.wateredLongAgo() && (in.Symptoms.DryLeaves || in.Symptoms.DroppingLeaves)
}

func (in Input) sunDamaged() bool {
	return in.Environment.DirectSunlight && (in.Symptoms.BrownSpots || in.Symptoms.YellowLeaves)
}

func (in Input) lightStarved() bool {
	return in.Environment.LowLight && in.Symptoms.SlowGrowth
}

func (in Input) cold() bool {
	return in.Temperature == VeryCold || in.Temperature == Cold
}

func (in Input) hot() bool {
	return in.Temperature == Hot || in.Temperature == Warm
}
