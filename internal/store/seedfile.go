package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"color-chooser/internal/colors"
)

type seedFile struct {
	Colors []colors.Record `yaml:"colors"`
}

// LoadSeedFile reads a YAML seed list:
//
//	colors:
//	  - name: Turquoise
//	    hex: "#1abc9c"
//
// An empty path yields colors.Defaults().
func LoadSeedFile(path string) ([]colors.Record, error) {
	if path == "" {
		return colors.Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	records, err := colors.Validate(f.Colors)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return records, nil
}
