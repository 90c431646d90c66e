package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kinlog/exsearch/internal/catalog"
	"github.com/kinlog/exsearch/internal/config"
)

var flagFacetsCatalog string

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Show the facet values usable with --muscle/--equipment/--pattern",
	Args:  cobra.NoArgs,
	RunE:  runFacets,
}

func init() {
	facetsCmd.Flags().StringVar(&flagFacetsCatalog, "catalog", "", "Catalog YAML file (overrides config)")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	items, err := loadItems(cfg, flagFacetsCatalog)
	if err != nil {
		return err
	}
	muscle, equipment, pattern := catalog.FacetValues(items)
	fmt.Printf("muscle:     %s\n", strings.Join(muscle, ", "))
	fmt.Printf("equipment:  %s\n", strings.Join(equipment, ", "))
	fmt.Printf("pattern:    %s\n", strings.Join(pattern, ", "))
	return nil
}
