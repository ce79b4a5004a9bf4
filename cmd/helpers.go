package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/syllabuild/syllabuild/internal/config"
)

// splitCourseArg parses a "term/course" argument (e.g. "sp26/math140b").
func splitCourseArg(arg string) (term, course string, err error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("course must be in format 'term/course' (e.g. sp26/math140b)")
	}
	return parts[0], parts[1], nil
}

// loadCourseConfig loads one course's configuration from its YAML file or,
// with fromCache, from the JSON cache.
func loadCourseConfig(term, course string, fromCache bool) (*config.Config, error) {
	if fromCache {
		return config.LoadCache(dataDir, term, course)
	}
	path := filepath.Join(dataDir, term, course+".yaml")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config not found: %s", path)
		}
		return nil, fmt.Errorf("accessing %s: %w", path, err)
	}
	return config.Load(path)
}

// outputRoot resolves the output directory: the --output flag wins, then the
// course config's output_dir.
func outputRoot(cfg *config.Config) string {
	if outputDir != "" {
		return outputDir
	}
	return cfg.OutputDir
}
