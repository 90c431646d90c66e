package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kinlog/exsearch/internal/config"
	"github.com/kinlog/exsearch/internal/search"
)

var (
	flagListLimit     int
	flagListMuscle    []string
	flagListEquipment []string
	flagListPattern   []string
	flagListCatalog   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog exercises in catalog order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "k", 0, "Maximum number of entries (default: all)")
	listCmd.Flags().StringSliceVar(&flagListMuscle, "muscle", nil, "Restrict to muscle groups (repeatable)")
	listCmd.Flags().StringSliceVar(&flagListEquipment, "equipment", nil, "Restrict to equipment (repeatable)")
	listCmd.Flags().StringSliceVar(&flagListPattern, "pattern", nil, "Restrict to movement patterns (repeatable)")
	listCmd.Flags().StringVar(&flagListCatalog, "catalog", "", "Catalog YAML file (overrides config)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	items, err := loadItems(cfg, flagListCatalog)
	if err != nil {
		return err
	}

	limit := flagListLimit
	if limit <= 0 {
		limit = len(items)
	}

	// Empty query takes the browse path: catalog order, score 0.
	ix := search.Build(items)
	filters := search.NewFilters(flagListMuscle, flagListEquipment, flagListPattern)
	results := ix.Search("", filters, limit)

	fmt.Printf("\n%d exercise(s)\n\n", len(results))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range results {
		name := r.Item.Name
		if r.Item.NameEn != "" {
			name += " / " + r.Item.NameEn
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s · %s · %s\n", r.Item.ID, name, r.Item.MuscleGroup, r.Item.Equipment, r.Item.Pattern)
	}
	return tw.Flush()
}
