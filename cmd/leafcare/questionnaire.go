package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"leafcare/internal/diagnose"
)

// loadQuestionnaires reads one questionnaire (a mapping) or several
// (a sequence of mappings) from a YAML file.
func loadQuestionnaires(path string) ([]diagnose.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questionnaire: %w", err)
	}
	inputs, err := parseQuestionnaires(data)
	if err != nil {
		return nil, fmt.Errorf("questionnaire %s: %w", path, err)
	}
	return inputs, nil
}

func parseQuestionnaires(data []byte) ([]diagnose.Input, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		var in diagnose.Input
		if err := root.Decode(&in); err != nil {
			return nil, err
		}
		return []diagnose.Input{in}, nil
	case yaml.SequenceNode:
		var inputs []diagnose.Input
		if err := root.Decode(&inputs); err != nil {
			return nil, err
		}
		if len(inputs) == 0 {
			return nil, fmt.Errorf("empty questionnaire list")
		}
		return inputs, nil
	default:
		return nil, fmt.Errorf("expected a questionnaire or a list of questionnaires (line %d)", root.Line)
	}
}
