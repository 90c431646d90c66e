package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kinlog/exsearch/internal/catalog"
	"github.com/kinlog/exsearch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "exsearch",
	Short:        "exsearch — fuzzy exercise name search for workout logs",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `exsearch resolves free-text, possibly misspelled, mixed-script exercise
names (日本語/English, hiragana/katakana, full/half width) to ranked catalog
entries, with optional muscle-group/equipment/pattern filters.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadItems returns the catalog to index: pathOverride if given, else the
// configured catalog file, else the catalog bundled with the binary.
func loadItems(cfg *config.Config, pathOverride string) ([]catalog.Item, error) {
	path := pathOverride
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return catalog.Load(path)
}
