package search

import "github.com/kinlog/exsearch/internal/catalog"

// Key weights, fixed per origin field.
const (
	weightPrimary   = 8
	weightSecondary = 6
	weightAlias     = 5
)

// Entry maps one normalized name key to the item it was derived from.
type Entry struct {
	Key    string
	ItemID string
	Weight int
}

// Index is the lookup structure built once from a catalog snapshot. It is
// never mutated after Build and is safe to share across concurrent Search
// calls.
type Index struct {
	entries []Entry
	byID    map[string]catalog.Item
	items   []catalog.Item
}

// Build constructs an Index from items. Every item yields a primary-name
// entry (even when the name normalizes to nothing), plus entries for a
// non-empty secondary name and each non-empty alias. Duplicate ids are not
// validated; the last item wins in the id table.
func Build(items []catalog.Item) *Index {
	ix := &Index{
		entries: make([]Entry, 0, len(items)*2),
		byID:    make(map[string]catalog.Item, len(items)),
		items:   append([]catalog.Item(nil), items...),
	}
	for _, it := range items {
		ix.entries = append(ix.entries, Entry{Key: Normalize(it.Name), ItemID: it.ID, Weight: weightPrimary})
		if key := Normalize(it.NameEn); key != "" {
			ix.entries = append(ix.entries, Entry{Key: key, ItemID: it.ID, Weight: weightSecondary})
		}
		for _, alias := range it.Aliases {
			if key := Normalize(alias); key != "" {
				ix.entries = append(ix.entries, Entry{Key: key, ItemID: it.ID, Weight: weightAlias})
			}
		}
		ix.byID[it.ID] = it
	}
	return ix
}

// Items returns the catalog in its original order, for browse listings.
func (ix *Index) Items() []catalog.Item { return ix.items }
