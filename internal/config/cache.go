package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CourseRef names one course config within the data directory.
type CourseRef struct {
	Term   string // term directory, e.g. "sp26"
	Course string // course name, e.g. "math140b"
}

func (r CourseRef) String() string {
	return r.Term + "/" + r.Course
}

// SaveCache writes the configuration to the JSON cache file
// data/<term>/<course>.json so later builds can run without re-reading the
// authoritative source.
func (c *Config) SaveCache(dataDir, term, course string) error {
	cacheDir := filepath.Join(dataDir, term)
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	cacheFile := filepath.Join(cacheDir, course+".json")
	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("writing cache to %s: %w", cacheFile, err)
	}
	return nil
}

// LoadCache reads a configuration from the JSON cache file.
func LoadCache(dataDir, term, course string) (*Config, error) {
	cacheFile := filepath.Join(dataDir, term, course+".json")
	data, err := os.ReadFile(cacheFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("cache file not found: %s", cacheFile)
		}
		return nil, fmt.Errorf("reading cache %s: %w", cacheFile, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing cache %s: %w", cacheFile, err)
	}
	return cfg, nil
}

// Courses lists all course configs found in the data directory, sorted by
// term then course.
func Courses(dataDir string) ([]CourseRef, error) {
	return listCourses(dataDir, ".yaml")
}

// CachedCourses lists all courses with a JSON cache file.
func CachedCourses(dataDir string) ([]CourseRef, error) {
	return listCourses(dataDir, ".json")
}

func listCourses(dataDir, ext string) ([]CourseRef, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading data dir %s: %w", dataDir, err)
	}

	var refs []CourseRef
	for _, term := range entries {
		if !term.IsDir() || strings.HasPrefix(term.Name(), ".") {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dataDir, term.Name()))
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ext) {
				continue
			}
			refs = append(refs, CourseRef{
				Term:   term.Name(),
				Course: strings.TrimSuffix(f.Name(), ext),
			})
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Term != refs[j].Term {
			return refs[i].Term < refs[j].Term
		}
		return refs[i].Course < refs[j].Course
	})
	return refs, nil
}
