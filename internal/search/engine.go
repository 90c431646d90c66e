package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/kinlog/exsearch/internal/catalog"
)

const (
	// DefaultLimit is used when Search is called with limit <= 0.
	DefaultLimit = 20

	// FuzzyMaxQueryLen caps the edit-distance fallback to short queries;
	// longer queries rely on exact/prefix/substring matching only.
	FuzzyMaxQueryLen = 6
)

// Score multipliers per match tier. A single entry contributes through at
// most one tier, checked in this order.
const (
	tierExact     = 100
	tierPrefix    = 60
	tierSubstring = 30
	tierFuzzy1    = 20
	tierFuzzy2    = 10
)

// Filters narrows results by facet. A nil or empty set leaves that facet
// unconstrained; a non-empty set requires membership.
type Filters struct {
	MuscleGroups map[string]bool
	Equipment    map[string]bool
	Patterns     map[string]bool
}

// NewFilters builds Filters from flag-style value lists.
func NewFilters(muscle, equipment, pattern []string) Filters {
	return Filters{
		MuscleGroups: toSet(muscle),
		Equipment:    toSet(equipment),
		Patterns:     toSet(pattern),
	}
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// Match reports whether it passes every non-empty facet set.
func (f Filters) Match(it catalog.Item) bool {
	if len(f.MuscleGroups) > 0 && !f.MuscleGroups[it.MuscleGroup] {
		return false
	}
	if len(f.Equipment) > 0 && !f.Equipment[it.Equipment] {
		return false
	}
	if len(f.Patterns) > 0 && !f.Patterns[it.Pattern] {
		return false
	}
	return true
}

// Result is one ranked match. Score is 0 on the browse (empty query) path.
type Result struct {
	Item  catalog.Item
	Score int
}

// Search resolves a free-text query against the index and returns up to limit
// results, best first. An empty (post-normalization) query lists the catalog
// in its original order instead. Equal scores keep catalog order. Search
// never fails; at worst it returns an empty slice.
func (ix *Index) Search(query string, f Filters, limit int) []Result {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := Normalize(query)
	if q == "" {
		return ix.browse(f, limit)
	}

	scores := make(map[string]int)
	qLen := utf8.RuneCountInString(q)
	for _, e := range ix.entries {
		if e.Key == "" {
			continue
		}
		switch {
		case e.Key == q:
			scores[e.ItemID] += tierExact * e.Weight
		case strings.HasPrefix(e.Key, q):
			scores[e.ItemID] += tierPrefix * e.Weight
		case strings.Contains(e.Key, q):
			scores[e.ItemID] += tierSubstring * e.Weight
		case qLen <= FuzzyMaxQueryLen:
			switch levenshtein(e.Key, q) {
			case 1:
				scores[e.ItemID] += tierFuzzy1 * e.Weight
			case 2:
				scores[e.ItemID] += tierFuzzy2 * e.Weight
			}
		}
	}

	// Materialize in catalog order so the stable sort leaves equal scores in
	// catalog order. Duplicate ids resolve once, through the id table.
	out := make([]Result, 0, len(scores))
	seen := make(map[string]bool, len(scores))
	for _, it := range ix.items {
		score, ok := scores[it.ID]
		if !ok || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		resolved := ix.byID[it.ID]
		if !f.Match(resolved) {
			continue
		}
		out = append(out, Result{Item: resolved, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (ix *Index) browse(f Filters, limit int) []Result {
	out := make([]Result, 0, limit)
	for _, it := range ix.items {
		if !f.Match(it) {
			continue
		}
		out = append(out, Result{Item: it})
		if len(out) == limit {
			break
		}
	}
	return out
}
