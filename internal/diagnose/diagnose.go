package diagnose

import (
	"fmt"
	"strconv"
	"strings"

	"leafcare/internal/catalog"
)

// Symptom counts above these bounds raise the status.
const (
	warningAbove = 1
	dangerAbove  = 4
)

// Diagnose evaluates a questionnaire. Unknown enum values simply match no
// rule.
func Diagnose(in Input) *Result {
	status := statusFor(in.SymptomCount())

	sections := []string{
		header(in, status),
		section(titleWatering, watering(in)),
		section(titleEnvironment, environment(in)),
	}
	if pests := pests(in); pests != "" {
		sections = append(sections, section(titlePests, pests))
	}
	sections = append(sections, section(titlePlan, actionPlan(in, status)))

	return &Result{
		Diagnosis:      strings.Join(sections, "\n\n"),
		Status:         status,
		ActionRequired: actionRequired(in, status),
	}
}

func statusFor(symptomCount int) catalog.Status {
	switch {
	case symptomCount > dangerAbove:
		return catalog.Danger
	case symptomCount > warningAbove:
		return catalog.Warning
	default:
		return catalog.Healthy
	}
}

func actionRequired(in Input, status catalog.Status) bool {
	s := in.Symptoms
	return status == catalog.Danger || s.Insects || s.MoldOrFungus || (s.YellowLeaves && s.DroppingLeaves)
}

func section(title, body string) string {
	return title + "\n" + body
}

func header(in Input, status catalog.Status) string {
	name := strings.TrimSpace(in.PlantName)
	if name == "" {
		name = defaultPlantName
	}
	if sp := strings.TrimSpace(in.PlantSpecies); sp != "" {
		name = fmt.Sprintf("%s (%s)", name, sp)
	}
	var state string
	switch status {
	case catalog.Danger:
		state = headerDanger
	case catalog.Warning:
		state = headerWarning
	default:
		state = headerHealthy
	}
	return fmt.Sprintf("Diagnostic pour %s : %s", name, state)
}

func watering(in Input) string {
	s := in.Symptoms
	if !s.YellowLeaves && !s.DroppingLeaves && !s.DryLeaves {
		return wateringFine
	}
	if in.overwatered() {
		return wateringOver
	}
	if in.underwatered() {
		return wateringUnder
	}
	var clauses []string
	if s.YellowLeaves {
		clauses = append(clauses, wateringYellow)
	}
	if s.DroppingLeaves {
		clauses = append(clauses, wateringDropping)
	}
	if s.DryLeaves {
		clauses = append(clauses, wateringDry)
	}
	return strings.Join(clauses, " ")
}

func environment(in Input) string {
	s := in.Symptoms
	var clauses []string
	if in.sunDamaged() {
		clauses = append(clauses, envSun)
	}
	if in.lightStarved() {
		clauses = append(clauses, envLowLight)
	}
	if in.cold() {
		c := envCold
		if s.DroppingLeaves || s.YellowLeaves {
			c += " " + envColdLeaves
		}
		clauses = append(clauses, c)
	}
	if in.hot() {
		c := envHeat
		if s.DryLeaves {
			c += " " + envHeatDry
		}
		clauses = append(clauses, c)
	}
	if in.Temperature == Fluctuating {
		clauses = append(clauses, envFluctuating)
	}
	if len(clauses) == 0 {
		return envFine
	}
	return strings.Join(clauses, " ")
}

// pests returns "" when neither insects nor mold were reported.
func pests(in Input) string {
	s := in.Symptoms
	var clauses []string
	if s.Insects {
		c := pestInsects
		if s.YellowLeaves || s.BrownSpots {
			c += " " + pestInsectsDamage
		}
		clauses = append(clauses, c+" "+pestInspect)
	}
	if s.MoldOrFungus {
		c := pestMold
		if in.wateredRecently() {
			c += " " + pestMoldRecent
		}
		clauses = append(clauses, c)
	}
	return strings.Join(clauses, " ")
}

func actionPlan(in Input, status catalog.Status) string {
	var steps []string
	switch {
	case in.overwatered():
		steps = append(steps, stepReduceWatering, stepCheckDrainage)
	case in.underwatered():
		steps = append(steps, stepIncreaseWatering)
		if in.Environment.DirectSunlight || in.Temperature == Hot {
			steps = append(steps, stepHeatWatering)
		}
	}
	switch {
	case in.sunDamaged():
		steps = append(steps, stepIndirectLight)
	case in.lightStarved():
		steps = append(steps, stepBrighterSpot)
	}
	if in.Symptoms.Insects {
		steps = append(steps, stepTreatInsects, stepIsolate)
	}
	if in.Symptoms.MoldOrFungus {
		steps = append(steps, stepAirflow, stepDryFoliage)
	}
	if len(steps) == 0 {
		if status == catalog.Healthy {
			steps = append(steps, stepKeepRoutine, stepKeepObserving)
		} else {
			steps = append(steps, stepSchedule, stepCheckLight)
		}
	}

	lines := make([]string, 0, len(steps)+1)
	for i, st := range steps {
		lines = append(lines, strconv.Itoa(i+1)+". "+st)
	}
	if status == catalog.Danger {
		lines = append(lines, planUrgent)
	}
	return strings.Join(lines, "\n")
}
