package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leafcare/internal/diagnose"
)

var diagnoseFlags struct {
	file        string
	plant       string
	species     string
	watering    string
	temperature string
	sun         bool
	indirect    bool
	lowLight    bool
	symptoms    []string
	notes       string
	parallel    int
	jsonOut     bool
}

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Diagnose a plant from a symptom questionnaire",
	Long: `Diagnose a plant from a questionnaire given either as flags or as a YAML
file (-f). A file may hold one questionnaire or a list of them; lists are
diagnosed on --parallel workers.

Questionnaire file:

  plantName: Monstera
  lastWatering: today        # today, yesterday, few_days, week, more_than_week, dont_remember
  temperature: normal        # very_cold, cold, cool, normal, warm, hot, fluctuating
  environment: {directSunlight: false, brightIndirect: true, lowLight: false}
  symptoms: {yellowLeaves: true, droppingLeaves: true}

Symptom codes for --symptom: ` + strings.Join(diagnose.SymptomNames, ", "),
	Args: cobra.NoArgs,
	RunE: runDiagnose,
}

func init() {
	f := diagnoseCmd.Flags()
	f.StringVarP(&diagnoseFlags.file, "file", "f", "", "Questionnaire YAML file (one or a list)")
	f.StringVar(&diagnoseFlags.plant, "plant", "", "Plant name")
	f.StringVar(&diagnoseFlags.species, "species", "", "Plant species, if known")
	f.StringVar(&diagnoseFlags.watering, "watering", "", "Last watering: today, yesterday, few_days, week, more_than_week, dont_remember")
	f.StringVar(&diagnoseFlags.temperature, "temperature", "", "Temperature: very_cold, cold, cool, normal, warm, hot, fluctuating")
	f.BoolVar(&diagnoseFlags.sun, "sun", false, "Plant gets direct sun")
	f.BoolVar(&diagnoseFlags.indirect, "indirect", false, "Plant gets bright indirect light")
	f.BoolVar(&diagnoseFlags.lowLight, "low-light", false, "Plant sits in low light")
	f.StringSliceVar(&diagnoseFlags.symptoms, "symptom", nil, "Observed symptom code (repeatable or comma-separated)")
	f.StringVar(&diagnoseFlags.notes, "notes", "", "Free-text notes (recorded, not used by the rules)")
	f.IntVar(&diagnoseFlags.parallel, "parallel", 4, "Workers for questionnaire lists")
	f.BoolVar(&diagnoseFlags.jsonOut, "json", false, "Print JSON")
}

func runDiagnose(cmd *cobra.Command, _ []string) error {
	inputs, fromFile, err := diagnoseInputs(cmd)
	if err != nil {
		return err
	}

	app, err := openApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	reports, err := app.Service.DiagnoseAll(cmd.Context(), inputs, diagnoseFlags.parallel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if diagnoseFlags.jsonOut {
		if fromFile && len(reports) > 1 {
			return writeJSON(out, reports)
		}
		return writeJSON(out, reports[0])
	}
	for i, rep := range reports {
		if i > 0 {
			separator(out)
		}
		writeDiagnosis(out, rep)
	}
	return nil
}

// diagnoseInputs builds questionnaires from -f or from the flags. Mixing
// both is an error.
func diagnoseInputs(cmd *cobra.Command) ([]diagnose.Input, bool, error) {
	if diagnoseFlags.file != "" {
		for _, name := range []string{"plant", "species", "watering", "temperature", "sun", "indirect", "low-light", "symptom", "notes"} {
			if cmd.Flags().Changed(name) {
				return nil, false, fmt.Errorf("--%s cannot be combined with -f", name)
			}
		}
		inputs, err := loadQuestionnaires(diagnoseFlags.file)
		return inputs, true, err
	}

	symptoms, err := diagnose.ParseSymptoms(diagnoseFlags.symptoms)
	if err != nil {
		return nil, false, err
	}
	return []diagnose.Input{{
		PlantName:    diagnoseFlags.plant,
		PlantSpecies: diagnoseFlags.species,
		LastWatering: diagnose.Watering(diagnoseFlags.watering),
		Temperature:  diagnose.Temperature(diagnoseFlags.temperature),
		Environment: diagnose.Environment{
			DirectSunlight: diagnoseFlags.sun,
			BrightIndirect: diagnoseFlags.indirect,
			LowLight:       diagnoseFlags.lowLight,
		},
		Symptoms:        symptoms,
		AdditionalNotes: diagnoseFlags.notes,
	}}, false, nil
}
