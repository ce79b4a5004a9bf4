package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syllabuild/syllabuild/internal/config"
	"github.com/syllabuild/syllabuild/internal/progress"
	"github.com/syllabuild/syllabuild/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build [term/course]",
	Short: "Build syllabus sites",
	Long: `Builds the static syllabus site for one course (term/course, e.g.
sp26/math140b) or for every course found in the data directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Bool("clean", false, "remove the output directory before building")
	buildCmd.Flags().Bool("from-cache", false, "build from cached JSON config (no YAML reads)")
	buildCmd.Flags().String("from-remote", "", "build from a published course roster URL")
	buildCmd.Flags().Bool("save-cache", false, "save loaded config to the JSON cache")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	clean, _ := cmd.Flags().GetBool("clean")
	fromCache, _ := cmd.Flags().GetBool("from-cache")
	remoteURL, _ := cmd.Flags().GetString("from-remote")
	saveCache, _ := cmd.Flags().GetBool("save-cache")

	if fromCache && remoteURL != "" {
		return fmt.Errorf("--from-cache and --from-remote are mutually exclusive")
	}

	var remote map[config.CourseRef]*config.Config
	if remoteURL != "" {
		var err error
		remote, err = config.FetchRemote(remoteURL)
		if err != nil {
			return err
		}
	}

	var courses []config.CourseRef
	if len(args) == 1 {
		term, course, err := splitCourseArg(args[0])
		if err != nil {
			return err
		}
		ref := config.CourseRef{Term: term, Course: course}
		if remote != nil {
			if _, ok := remote[ref]; !ok {
				return fmt.Errorf("course %s not in roster %s", ref, remoteURL)
			}
		}
		courses = []config.CourseRef{ref}
	} else {
		var err error
		switch {
		case remote != nil:
			courses = config.RemoteCourses(remote)
		case fromCache:
			courses, err = config.CachedCourses(dataDir)
		default:
			courses, err = config.Courses(dataDir)
		}
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			return fmt.Errorf("no courses found in %s", dataDir)
		}
	}

	source := "YAML"
	switch {
	case remote != nil:
		source = "remote roster"
	case fromCache:
		source = "cached JSON"
	}
	fmt.Printf("Building %d course(s) from %s...\n", len(courses), source)

	cleaned := make(map[string]bool)
	for _, ref := range courses {
		var cfg *config.Config
		var err error
		if remote != nil {
			cfg = remote[ref]
		} else {
			cfg, err = loadCourseConfig(ref.Term, ref.Course, fromCache)
		}
		if err != nil {
			return err
		}
		if cfg.Course.Term == "" {
			cfg.Course.Term = ref.Term
		}
		if cfg.Course.Number == "" {
			cfg.Course.Number = ref.Course
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%s: %w", ref, err)
		}

		if saveCache {
			if err := cfg.SaveCache(dataDir, ref.Term, ref.Course); err != nil {
				return err
			}
			fmt.Printf("  Cached: %s/%s.json\n", ref.Term, ref.Course)
		}

		root := outputRoot(cfg)
		if clean && !cleaned[root] {
			if err := site.Clean(root); err != nil {
				return err
			}
			cleaned[root] = true
		}

		builder := site.NewBuilder(cfg, filepath.Join(root, ref.Term, ref.Course))
		builder.Reporter = progress.NewReporter()

		fmt.Printf("\nBuilding %s...\n", ref)
		pages, err := builder.Build()
		if err != nil {
			return fmt.Errorf("building %s: %w", ref, err)
		}
		fmt.Printf("  Built %d page(s) into %s\n", pages, builder.OutputDir)
	}

	fmt.Println("\nBuild complete!")
	return nil
}
