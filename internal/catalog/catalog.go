// Package catalog defines the exercise records the search engine indexes and
// loads them from YAML. The engine itself never touches files; this package
// plays the "catalog source" role on its behalf.
package catalog

// Item is one exercise record. Constructed once by the loader and treated as
// immutable afterwards; identity is ID.
type Item struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	NameEn      string   `yaml:"name_en,omitempty"`
	MuscleGroup string   `yaml:"muscle_group"`
	Aliases     []string `yaml:"aliases,omitempty"`
	Equipment   string   `yaml:"equipment"`
	Pattern     string   `yaml:"pattern"`
}

// FacetValues returns the distinct muscle-group, equipment and pattern values
// of items, each in first-seen catalog order.
func FacetValues(items []Item) (muscle, equipment, pattern []string) {
	muscle = distinct(items, func(it Item) string { return it.MuscleGroup })
	equipment = distinct(items, func(it Item) string { return it.Equipment })
	pattern = distinct(items, func(it Item) string { return it.Pattern })
	return muscle, equipment, pattern
}

func distinct(items []Item, value func(Item) string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		v := value(it)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
