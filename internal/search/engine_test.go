package search

import (
	"sync"
	"testing"

	"github.com/kinlog/exsearch/internal/catalog"
)

func benchPressCatalog() []catalog.Item {
	return []catalog.Item{
		{
			ID: "bench_press", Name: "ベンチプレス", NameEn: "Bench Press",
			MuscleGroup: "chest", Aliases: []string{"ベンチ"},
			Equipment: "barbell", Pattern: "push",
		},
		{
			ID: "incline_bench_press", Name: "インクラインベンチプレス", NameEn: "Incline Bench Press",
			MuscleGroup: "chest", Equipment: "barbell", Pattern: "push",
		},
		{
			ID: "squat", Name: "スクワット", NameEn: "Squat",
			MuscleGroup: "legs", Equipment: "barbell", Pattern: "squat",
		},
	}
}

func TestSearch_AliasExactBeatsNameSubstring(t *testing.T) {
	ix := Build(benchPressCatalog())
	got := ix.Search("ベンチ", Filters{}, 20)
	if len(got) == 0 {
		t.Fatal("no results")
	}
	if got[0].Item.ID != "bench_press" {
		t.Fatalf("top result = %s, want bench_press", got[0].Item.ID)
	}
	// Alias exact (100*5) plus primary-name prefix (60*8) accumulate.
	if got[0].Score != 100*weightAlias+60*weightPrimary {
		t.Errorf("score = %d, want %d", got[0].Score, 100*weightAlias+60*weightPrimary)
	}
	// The incline variant matches only as a primary-name substring.
	if len(got) < 2 || got[1].Item.ID != "incline_bench_press" {
		t.Fatalf("second result = %v, want incline_bench_press", got)
	}
	if got[1].Score != 30*weightPrimary {
		t.Errorf("substring score = %d, want %d", got[1].Score, 30*weightPrimary)
	}
}

func TestSearch_TierOrdering(t *testing.T) {
	items := []catalog.Item{
		{ID: "fuzzy2", Name: "Bamch"},      // edit distance 2
		{ID: "fuzzy1", Name: "Bunch"},      // edit distance 1
		{ID: "substr", Name: "Superbench"}, // substring
		{ID: "prefix", Name: "Bencher"},    // prefix
		{ID: "exact", Name: "Bench"},       // exact
		{ID: "none", Name: "Deadlift"},
	}
	ix := Build(items)
	got := ix.Search("bench", Filters{}, 20)

	wantOrder := []string{"exact", "prefix", "substr", "fuzzy1", "fuzzy2"}
	wantScores := []int{
		100 * weightPrimary, 60 * weightPrimary, 30 * weightPrimary,
		20 * weightPrimary, 10 * weightPrimary,
	}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d results, want %d: %v", len(got), len(wantOrder), got)
	}
	for i := range wantOrder {
		if got[i].Item.ID != wantOrder[i] || got[i].Score != wantScores[i] {
			t.Errorf("result %d = %s/%d, want %s/%d",
				i, got[i].Item.ID, got[i].Score, wantOrder[i], wantScores[i])
		}
	}
}

func TestSearch_EmptyQueryBrowse(t *testing.T) {
	ix := Build(benchPressCatalog())
	for _, query := range []string{"", "   ", "---"} {
		got := ix.Search(query, Filters{}, 2)
		if len(got) != 2 {
			t.Fatalf("browse(%q) returned %d results, want 2", query, len(got))
		}
		if got[0].Item.ID != "bench_press" || got[1].Item.ID != "incline_bench_press" {
			t.Errorf("browse(%q) order = %s, %s", query, got[0].Item.ID, got[1].Item.ID)
		}
		for _, r := range got {
			if r.Score != 0 {
				t.Errorf("browse score = %d, want 0", r.Score)
			}
		}
	}
}

func TestSearch_Filters(t *testing.T) {
	ix := Build(benchPressCatalog())

	f := NewFilters([]string{"legs"}, nil, nil)
	got := ix.Search("", f, 20)
	if len(got) != 1 || got[0].Item.ID != "squat" {
		t.Fatalf("muscle filter: got %v", got)
	}

	// Scored path: the query matches bench variants, the filter drops them.
	f = NewFilters(nil, nil, []string{"squat"})
	got = ix.Search("ベンチ", f, 20)
	if len(got) != 0 {
		t.Fatalf("pattern filter should drop every match, got %v", got)
	}

	f = NewFilters([]string{"chest"}, []string{"barbell"}, []string{"push"})
	got = ix.Search("ベンチ", f, 20)
	for _, r := range got {
		if r.Item.MuscleGroup != "chest" || r.Item.Equipment != "barbell" || r.Item.Pattern != "push" {
			t.Errorf("filtered result violates facets: %+v", r.Item)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected both bench variants, got %d", len(got))
	}
}

func TestSearch_LimitEnforcement(t *testing.T) {
	ix := Build(benchPressCatalog())
	if got := ix.Search("ベンチ", Filters{}, 1); len(got) != 1 {
		t.Fatalf("limit 1 returned %d results", len(got))
	}
	// limit <= 0 falls back to DefaultLimit.
	if got := ix.Search("", Filters{}, 0); len(got) != 3 {
		t.Fatalf("default limit browse returned %d results", len(got))
	}
}

func TestSearch_FuzzyBoundedToShortQueries(t *testing.T) {
	items := []catalog.Item{{ID: "x", Name: "abcdefg"}}
	ix := Build(items)

	// Edit distance 1, but the query is 7 runes: fuzzy tier must not fire.
	if got := ix.Search("abcdefx", Filters{}, 20); len(got) != 0 {
		t.Fatalf("long query should not fuzzy-match, got %v", got)
	}
	// Short query at distance <= 2 matches.
	items = []catalog.Item{{ID: "y", Name: "bench"}}
	ix = Build(items)
	if got := ix.Search("bunch", Filters{}, 20); len(got) != 1 || got[0].Score != 20*weightPrimary {
		t.Fatalf("distance-1 query should match, got %v", got)
	}
	// Distance 3 with no other tier: no match.
	if got := ix.Search("zzzch", Filters{}, 20); len(got) != 0 {
		t.Fatalf("distance-3 query should not match, got %v", got)
	}
}

func TestSearch_TieBreakIsCatalogOrder(t *testing.T) {
	items := []catalog.Item{
		{ID: "second", Name: "Squat Mat"},
		{ID: "first", Name: "Squat Bar"},
	}
	got := Build(items).Search("squat", Filters{}, 20)
	if len(got) != 2 || got[0].Item.ID != "second" || got[1].Item.ID != "first" {
		t.Fatalf("equal scores should keep catalog order, got %v", got)
	}

	// Reversing the catalog reverses the tie order.
	got = Build([]catalog.Item{items[1], items[0]}).Search("squat", Filters{}, 20)
	if got[0].Item.ID != "first" {
		t.Fatalf("tie order should follow catalog order, got %v", got)
	}
}

func TestSearch_DuplicateIDResolvesOnce(t *testing.T) {
	items := []catalog.Item{
		{ID: "dup", Name: "Bench"},
		{ID: "dup", Name: "Bench Two"},
	}
	got := Build(items).Search("bench", Filters{}, 20)
	if len(got) != 1 {
		t.Fatalf("duplicate id should yield one result, got %v", got)
	}
	if got[0].Item.Name != "Bench Two" {
		t.Errorf("id table should be last-write-wins, got %q", got[0].Item.Name)
	}
}

func TestSearch_ConcurrentReads(t *testing.T) {
	ix := Build(benchPressCatalog())
	queries := []string{"ベンチ", "すくわっと", "", "press", "zzzch"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, q := range queries {
				_ = ix.Search(q, Filters{}, 10)
			}
		}()
	}
	wg.Wait()
}
