// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output and tables.
// Keep raw codes for JSON fields, store columns, and equality comparisons.
package display

import (
	"strings"

	"leafcare/internal/diagnose"
)

// --- Health Status ---

var statuses = map[string]string{
	"healthy": "En bonne santé",
	"warning": "À surveiller",
	"danger":  "En danger",
}

// Status returns the human-readable name for a health status code.
// Unknown codes are returned as-is.
func Status(code string) string {
	if name, ok := statuses[code]; ok {
		return name
	}
	return code
}

// StatusWithCode returns "À surveiller (warning)" format.
func StatusWithCode(code string) string {
	if name, ok := statuses[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Questionnaire ---

var waterings = map[string]string{
	"today":          "Aujourd'hui",
	"yesterday":      "Hier",
	"few_days":       "Il y a quelques jours",
	"week":           "Il y a une semaine",
	"more_than_week": "Il y a plus d'une semaine",
	"dont_remember":  "Je ne sais plus",
}

// Watering returns the label for a last-watering code.
func Watering(code string) string {
	if name, ok := waterings[code]; ok {
		return name
	}
	return code
}

var temperatures = map[string]string{
	"very_cold":   "Très froid (moins de 10°C)",
	"cold":        "Froid (10-15°C)",
	"cool":        "Frais (15-18°C)",
	"normal":      "Normal (18-24°C)",
	"warm":        "Chaud (24-28°C)",
	"hot":         "Très chaud (plus de 28°C)",
	"fluctuating": "Variable",
}

// Temperature returns the label for a temperature band code.
func Temperature(code string) string {
	if name, ok := temperatures[code]; ok {
		return name
	}
	return code
}

// Symptoms lists the labels of the set symptoms in questionnaire order.
// Returns nil when none are set.
func Symptoms(s diagnose.Symptoms) []string {
	var out []string
	for _, sym := range []struct {
		set   bool
		label string
	}{
		{s.YellowLeaves, "Feuilles jaunes"},
		{s.BrownSpots, "Taches brunes"},
		{s.DroppingLeaves, "Chute des feuilles"},
		{s.DryLeaves, "Feuilles sèches"},
		{s.MoldOrFungus, "Moisissure ou champignon"},
		{s.Insects, "Insectes"},
		{s.SlowGrowth, "Croissance lente"},
		{s.RootIssues, "Problèmes de racines"},
	} {
		if sym.set {
			out = append(out, sym.label)
		}
	}
	return out
}

// SymptomLine joins the set symptom labels, or returns "Aucun symptôme".
func SymptomLine(s diagnose.Symptoms) string {
	labels := Symptoms(s)
	if len(labels) == 0 {
		return "Aucun symptôme"
	}
	return strings.Join(labels, ", ")
}

// --- Records ---

var kinds = map[string]string{
	"identification": "Identification",
	"diagnosis":      "Diagnostic",
}

// Kind returns the label for a history record kind.
func Kind(code string) string {
	if name, ok := kinds[code]; ok {
		return name
	}
	return code
}
