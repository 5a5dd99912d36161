package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Plants []Entry `yaml:"plants"`
}

// Default returns the embedded reference catalog. It panics if the embedded
// data is invalid, which is a build defect.
func Default() []Entry {
	entries, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("load embedded catalog.yaml: %v", err))
	}
	return entries
}

// Load reads a catalog from path. An empty path yields the embedded catalog.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog data and validates every entry.
func Parse(data []byte) ([]Entry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(f.Plants); err != nil {
		return nil, err
	}
	return f.Plants, nil
}

// Validate checks the invariants loaded catalogs must hold. Duplicate IDs are
// allowed: the matchers resolve them by catalog order.
func Validate(entries []Entry) error {
	var errs []error
	for i, e := range entries {
		switch e.ID {
		case "":
			errs = append(errs, fmt.Errorf("plant #%d: missing id", i))
		case UnidentifiedID:
			errs = append(errs, fmt.Errorf("plant #%d: id %q is reserved", i, UnidentifiedID))
		}
		if e.DisplayName == "" {
			errs = append(errs, fmt.Errorf("plant #%d (%s): missing name", i, e.ID))
		}
		if len(e.CommonTypes) == 0 {
			errs = append(errs, fmt.Errorf("plant #%d (%s): at least one type is required", i, e.ID))
		}
		for j, is := range e.Issues {
			switch is.Severity {
			case Healthy, Warning, Danger:
			default:
				errs = append(errs, fmt.Errorf("plant #%d (%s) issue #%d: unknown severity %q", i, e.ID, j, is.Severity))
			}
		}
	}
	return errors.Join(errs...)
}
