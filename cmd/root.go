package cmd

import (
	"github.com/spf13/cobra"
)

var (
	dataDir   string
	outputDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "syllabuild",
	Short: "Static site builder for course syllabi",
	Long: `Syllabuild reads course configuration from YAML files (or a JSON
cache) and generates static syllabus pages with consistent navigation:
a top menu, a sidebar, and a quick-links panel with important dates.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "course config directory")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "output directory (defaults to the course config's output_dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
