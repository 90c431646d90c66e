package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinlog/exsearch/internal/history"
)

var flagHistoryClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search queries",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Clear the search history")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	if flagHistoryClear {
		if err := history.Clear(); err != nil {
			return err
		}
		printOK("history cleared")
		return nil
	}
	recent, err := history.Recent(50)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		printInfo("no search history")
		return nil
	}
	for i, q := range recent {
		fmt.Printf("  %d. %s\n", i+1, q)
	}
	return nil
}
