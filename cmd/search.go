package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kinlog/exsearch/internal/config"
	"github.com/kinlog/exsearch/internal/history"
	"github.com/kinlog/exsearch/internal/search"
)

var (
	flagSearchLimit     int
	flagSearchMuscle    []string
	flagSearchEquipment []string
	flagSearchPattern   []string
	flagSearchCatalog   string
	flagSearchNoHistory bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search exercises by name, alias or English name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchLimit, "limit", "k", 0, "Maximum number of results (default from config)")
	searchCmd.Flags().StringSliceVar(&flagSearchMuscle, "muscle", nil, "Restrict to muscle groups (repeatable)")
	searchCmd.Flags().StringSliceVar(&flagSearchEquipment, "equipment", nil, "Restrict to equipment (repeatable)")
	searchCmd.Flags().StringSliceVar(&flagSearchPattern, "pattern", nil, "Restrict to movement patterns (repeatable)")
	searchCmd.Flags().StringVar(&flagSearchCatalog, "catalog", "", "Catalog YAML file (overrides config)")
	searchCmd.Flags().BoolVar(&flagSearchNoHistory, "no-history", false, "Do not record the query in history")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	items, err := loadItems(cfg, flagSearchCatalog)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	limit := flagSearchLimit
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}

	ix := search.Build(items)
	filters := search.NewFilters(flagSearchMuscle, flagSearchEquipment, flagSearchPattern)
	results := ix.Search(query, filters, limit)
	renderResults(os.Stdout, query, results)

	if !flagSearchNoHistory {
		// History is a convenience; a lock conflict must not fail the search.
		if err := history.Record(query, cfg.HistorySize); err != nil {
			printWarn(fmt.Sprintf("history not recorded: %v", err))
		}
	}
	return nil
}

func renderResults(w io.Writer, query string, results []search.Result) {
	fmt.Fprintf(w, "\nexsearch %q — %d result(s)\n\n", query, len(results))
	if len(results) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range results {
		name := r.Item.Name
		if r.Item.NameEn != "" {
			name += " / " + r.Item.NameEn
		}
		fmt.Fprintf(tw, "  %d.\t[%d]\t%s\t%s\n", i+1, r.Score, r.Item.ID, name)
		fmt.Fprintf(tw, "  \t\t\t%s · %s · %s\n", r.Item.MuscleGroup, r.Item.Equipment, r.Item.Pattern)
	}
	_ = tw.Flush()
}
