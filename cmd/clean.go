package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syllabuild/syllabuild/internal/site"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the generated output directory",
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(_ *cobra.Command, _ []string) error {
	dir := outputDir
	if dir == "" {
		dir = "docs"
	}
	if err := site.Clean(dir); err != nil {
		return err
	}
	fmt.Printf("Cleaned: %s\n", dir)
	return nil
}
