package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kinlog/exsearch/internal/config"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to ~/.exsearch/config.yaml",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !flagInitForce {
		printWarn(fmt.Sprintf("config already exists: %s (use --force to overwrite)", path))
		return nil
	}
	if err := config.Save(config.Default()); err != nil {
		return err
	}
	printOK(fmt.Sprintf("config written: %s", path))
	return nil
}
