package config

// DefaultConfig returns a configuration with sensible defaults for a new
// course. Course fields are left blank for the caller (or the init wizard)
// to fill in.
func DefaultConfig() *Config {
	return &Config{
		PagesDir:  "pages",
		OutputDir: "docs",
		Exclude:   DefaultExcludes,
	}
}

// DefaultExcludes are page-directory patterns skipped by default during a
// build.
var DefaultExcludes = []string{
	"**/.*",
	"**/*.bak",
	"**/_drafts/**",
}
