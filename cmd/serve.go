package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syllabuild/syllabuild/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve [term/course]",
	Short: "Serve a generated syllabus site locally",
	Long: `Serves the generated output over HTTP for preview. With a
term/course argument and --watch, page sources are watched and the course is
rebuilt (and the browser reloaded) on every change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port for the local dev server")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", false, "rebuild and reload on page source changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	open, _ := cmd.Flags().GetBool("open")
	watch, _ := cmd.Flags().GetBool("watch")

	opts := site.ServeOptions{
		Port: port,
		Open: open,
	}

	if len(args) == 1 {
		term, course, err := splitCourseArg(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadCourseConfig(term, course, false)
		if err != nil {
			return err
		}
		courseDir := filepath.Join(outputRoot(cfg), term, course)

		opts.Dir = courseDir
		opts.Watch = watch
		opts.WatchDir = cfg.PagesDir
		opts.OnChange = func() error {
			builder := site.NewBuilder(cfg, courseDir)
			_, err := builder.Build()
			return err
		}
	} else {
		if watch {
			return fmt.Errorf("--watch requires a term/course argument")
		}
		opts.Dir = outputDir
		if opts.Dir == "" {
			opts.Dir = "docs"
		}
	}

	return site.Serve(opts)
}
