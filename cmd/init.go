package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syllabuild/syllabuild/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively set up a new course",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	cfg, err := config.RunWizard(dataDir)
	if err != nil {
		return err
	}
	fmt.Printf("\nNext: put your pages under %s/ and run `syllabuild build %s/%s`\n",
		cfg.PagesDir, cfg.Course.Term, cfg.Course.Number)
	return nil
}
