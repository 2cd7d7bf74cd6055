package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a flat key-value document. The format is selected by the
// extension: .yaml/.yml for YAML, .json for JSON.
func LoadFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", filename, err)
	}

	values := make(map[string]any)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	case ".json":
		err = json.Unmarshal(data, &values)
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", filename)
	}

	if err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", filename, err)
	}

	return FromMap(values), nil
}
