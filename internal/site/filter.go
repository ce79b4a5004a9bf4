package site

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// excluded checks whether a page-relative path matches any exclude pattern.
// Patterns use doublestar globs ("**/_drafts/**"); invalid patterns never
// match.
func excluded(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, normalized); err == nil && ok {
			return true
		}
	}
	return false
}
