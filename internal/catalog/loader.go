package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/exercises.yaml
var defaultData []byte

// Load reads and parses a YAML catalog file. The file is a list of items with
// fields id, name, name_en, muscle_group, aliases, equipment, pattern.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog %s: %w", path, err)
	}
	return parse(data, path)
}

// Default returns the exercise catalog bundled with the binary, used when no
// catalog path is configured.
func Default() []Item {
	items, err := parse(defaultData, "embedded catalog")
	if err != nil {
		// The embedded file ships with the binary; failing to parse it is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return items
}

func parse(data []byte, src string) ([]Item, error) {
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", src, err)
	}
	return items, nil
}
