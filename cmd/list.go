package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syllabuild/syllabuild/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available courses",
	RunE:  runList,
}

func init() {
	listCmd.Flags().Bool("cached", false, "list courses with a JSON cache instead of YAML configs")
	listCmd.Flags().String("remote", "", "list courses from a published roster URL")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cached, _ := cmd.Flags().GetBool("cached")
	remoteURL, _ := cmd.Flags().GetString("remote")

	var (
		courses []config.CourseRef
		err     error
	)
	switch {
	case remoteURL != "":
		var configs map[config.CourseRef]*config.Config
		configs, err = config.FetchRemote(remoteURL)
		courses = config.RemoteCourses(configs)
		fmt.Println("Courses in remote roster:")
	case cached:
		courses, err = config.CachedCourses(dataDir)
		fmt.Println("Courses with cached JSON files:")
	default:
		courses, err = config.Courses(dataDir)
		fmt.Println("Available courses (from YAML):")
	}
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, ref := range courses {
		fmt.Printf("  %s\n", ref)
	}
	return nil
}
