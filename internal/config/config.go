package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads a course configuration from the given YAML file, then overlays
// environment variable overrides (SYLLABUILD_*). A double underscore in the
// variable name separates nesting levels, so SYLLABUILD_COURSE__HUB_URL
// overrides course.hub_url.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables.
	if err := k.Load(env.Provider("SYLLABUILD_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SYLLABUILD_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains the values a build needs.
func (c *Config) Validate() error {
	if c.Course.Name == "" {
		return fmt.Errorf("course.name is required")
	}
	if c.Course.Term == "" {
		return fmt.Errorf("course.term is required")
	}
	if c.PagesDir == "" {
		return fmt.Errorf("pages_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}
