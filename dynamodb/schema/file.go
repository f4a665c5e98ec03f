package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a schema YAML file.
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, err
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("parse %s: %w", path, err)
	}

	seen := make(map[string]bool, len(s.Tables))
	for _, t := range s.Tables {
		if t.Name == "" {
			return Schema{}, fmt.Errorf("%s: table without name", path)
		}
		if seen[t.Name] {
			return Schema{}, fmt.Errorf("%s: duplicate table %q", path, t.Name)
		}
		seen[t.Name] = true
	}
	return s, nil
}

// Encode writes the schema as YAML.
func Encode(w io.Writer, s Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
