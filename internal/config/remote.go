package config

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	yamlv3 "gopkg.in/yaml.v3"
)

// remoteRoster is the wire shape of a published course roster: course
// configs keyed by term, then by course number. Each entry holds the same
// fields as a data/<term>/<course>.yaml file.
type remoteRoster struct {
	Courses map[string]map[string]yamlv3.Node `yaml:"courses"`
}

var remoteClient = &http.Client{Timeout: 30 * time.Second}

// FetchRemote downloads a course roster from the given URL and returns the
// parsed configs keyed by course reference. Roster entries are overlaid on
// the defaults the same way a local YAML config is; the term and course
// keys fill in course.term and course.number when the entry leaves them
// blank.
func FetchRemote(url string) (map[CourseRef]*Config, error) {
	resp, err := remoteClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching roster: %s returned %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}

	var roster remoteRoster
	if err := yamlv3.Unmarshal(body, &roster); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if len(roster.Courses) == 0 {
		return nil, fmt.Errorf("roster at %s lists no courses", url)
	}

	configs := make(map[CourseRef]*Config)
	for term, byCourse := range roster.Courses {
		for course, node := range byCourse {
			cfg := DefaultConfig()
			if err := node.Decode(cfg); err != nil {
				return nil, fmt.Errorf("roster entry %s/%s: %w", term, course, err)
			}
			if cfg.Course.Term == "" {
				cfg.Course.Term = term
			}
			if cfg.Course.Number == "" {
				cfg.Course.Number = course
			}
			configs[CourseRef{Term: term, Course: course}] = cfg
		}
	}
	return configs, nil
}

// RemoteCourses returns the roster's course references sorted by term then
// course.
func RemoteCourses(configs map[CourseRef]*Config) []CourseRef {
	refs := make([]CourseRef, 0, len(configs))
	for ref := range configs {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Term != refs[j].Term {
			return refs[i].Term < refs[j].Term
		}
		return refs[i].Course < refs[j].Course
	})
	return refs
}
